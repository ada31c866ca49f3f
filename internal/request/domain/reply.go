package domain

import (
	"fmt"
	"strings"
)

// DraftReply turns a simulation outcome into the confirmation text relayed
// back to the requesting DC. Pure formatting, deterministic for a given
// request and result.
func DraftReply(req *Request, productName string, result SimulationResult) string {
	name := productName
	if name == "" {
		name = req.SKU
	}
	dc := req.Requester
	if dc == "" {
		dc = "your DC"
	}
	dueDate := req.DueDate.Format("2006-01-02")

	var body []string

	switch result.Classification {
	case ClassificationFull:
		body = []string{
			fmt.Sprintf("We can supply the full %d cases of %s to %s by %s.", req.RequestedQty, name, dc, dueDate),
			"This volume is covered by current stock and scheduled production.",
			"",
			"No further action needed unless you want to change quantities.",
		}
	case ClassificationPartial:
		body = []string{
			fmt.Sprintf("Request recap: %d cases of %s for %s by %s.", req.RequestedQty, name, dc, dueDate),
			"",
			fmt.Sprintf("- We can confirm %d cases by %s.", result.TotalSatisfiable, dueDate),
			fmt.Sprintf("- The remaining %d cases cannot be covered in time.", result.Shortfall),
		}
		if result.EstimatedResolutionDate != nil {
			body = append(body,
				fmt.Sprintf("- The remainder is expected to be available by %s.", result.EstimatedResolutionDate.Format("2006-01-02")),
			)
		} else {
			body = append(body,
				"- No committed date for the remainder yet; production is not scheduled for this item.",
			)
		}
		body = append(body,
			"",
			"Please choose one of these options:",
			fmt.Sprintf("1. Deliver only %d cases on %s.", result.TotalSatisfiable, dueDate),
			fmt.Sprintf("2. Split delivery: %d first, then %d as soon as available.", result.TotalSatisfiable, result.Shortfall),
			"3. Cancel or adjust the request.",
		)
	default: // ClassificationNone
		body = []string{
			fmt.Sprintf("Request recap: %d cases of %s for %s by %s.", req.RequestedQty, name, dc, dueDate),
			"",
			"We cannot cover this quantity on that date.",
			"Reason: no stock on hand and no production capacity before the due date.",
		}
		if result.EstimatedResolutionDate != nil {
			body = append(body,
				fmt.Sprintf("The full quantity is expected to be available by %s.", result.EstimatedResolutionDate.Format("2006-01-02")),
			)
		}
		body = append(body,
			"",
			"Options:",
			"1. Accept delivery later.",
			"2. Reduce the requested quantity.",
			"3. Cancel.",
		)
	}

	signature := []string{
		"",
		"Thanks,",
		"Planning Team",
	}

	return strings.Join(append(body, signature...), "\n")
}
