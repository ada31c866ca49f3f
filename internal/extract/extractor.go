// Package extract turns free-form DC supply-request emails into the
// structured fields the simulation pipeline consumes. The regex extractor is
// a stand-in with the same contract an LLM-backed one would honor: absent
// fields come back empty, never guessed.
package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Fields holds what could be extracted from a raw email. Zero values mean
// the field was not found; the caller decides whether that is fatal.
type Fields struct {
	SKU       string `json:"sku"`
	Quantity  int    `json:"qty_requested"`
	DueDate   string `json:"requested_date"` // YYYY-MM-DD
	Requester string `json:"dc_name"`
}

// Extractor parses raw email text into structured request fields
type Extractor interface {
	Extract(rawEmail string) Fields
}

var (
	qtyShorthandRe = regexp.MustCompile(`(?i)\b(\d+)\s*k\b`)
	qtyPlainRe     = regexp.MustCompile(`\b(\d{3,})\b`)
	isoDateRe      = regexp.MustCompile(`\b(20\d{2}-\d{2}-\d{2})\b`)
	dcNameRe       = regexp.MustCompile(`\b([A-Z][a-zA-Z]+\s+DC)\b`)
	skuRe          = regexp.MustCompile(`\b([A-Z0-9]+_[A-Z0-9_]+)\b`)
)

// RegexExtractor is the heuristic extractor. Quantity accepts the "12k"
// shorthand common in DC mails; a bare number needs at least three digits so
// day-of-month fragments are not mistaken for quantities.
type RegexExtractor struct{}

// NewRegexExtractor creates a new regex extractor
func NewRegexExtractor() *RegexExtractor {
	return &RegexExtractor{}
}

// Extract parses the raw email text
func (e *RegexExtractor) Extract(rawEmail string) Fields {
	var fields Fields

	// the date matcher runs first so its digit groups can be masked out
	// before quantity guessing
	if m := isoDateRe.FindStringSubmatch(rawEmail); m != nil {
		fields.DueDate = m[1]
	}
	qtyText := isoDateRe.ReplaceAllString(rawEmail, "")

	if m := qtyShorthandRe.FindStringSubmatch(qtyText); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			fields.Quantity = n * 1000
		}
	} else if m := qtyPlainRe.FindStringSubmatch(qtyText); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			fields.Quantity = n
		}
	}

	if m := dcNameRe.FindStringSubmatch(rawEmail); m != nil {
		fields.Requester = strings.TrimSpace(m[1])
	}

	if m := skuRe.FindStringSubmatch(rawEmail); m != nil {
		fields.SKU = m[1]
	}

	return fields
}
