package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testRequest() *Request {
	return &Request{
		SKU:          "COLA_330ML_CASE24",
		RequestedQty: 12000,
		DueDate:      time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC),
		Requester:    "Rotterdam DC",
	}
}

func TestDraftReply_Full(t *testing.T) {
	req := testRequest()
	reply := DraftReply(req, "Cola 330ml 24-pack", SimulationResult{
		TotalSatisfiable: 12000,
		Classification:   ClassificationFull,
	})

	assert.Contains(t, reply, "We can supply the full 12000 cases of Cola 330ml 24-pack to Rotterdam DC by 2026-03-04.")
	assert.Contains(t, reply, "Planning Team")
	assert.NotContains(t, reply, "options")
}

func TestDraftReply_PartialWithResolution(t *testing.T) {
	req := testRequest()
	resolution := time.Date(2026, time.March, 18, 0, 0, 0, 0, time.UTC)
	reply := DraftReply(req, "Cola 330ml 24-pack", SimulationResult{
		TotalSatisfiable:        5000,
		Shortfall:               7000,
		Classification:          ClassificationPartial,
		EstimatedResolutionDate: &resolution,
	})

	assert.Contains(t, reply, "We can confirm 5000 cases by 2026-03-04.")
	assert.Contains(t, reply, "remaining 7000 cases")
	assert.Contains(t, reply, "available by 2026-03-18")
	assert.Contains(t, reply, "Split delivery: 5000 first, then 7000")
}

func TestDraftReply_PartialWithoutResolution(t *testing.T) {
	req := testRequest()
	reply := DraftReply(req, "", SimulationResult{
		TotalSatisfiable: 5000,
		Shortfall:        7000,
		Classification:   ClassificationPartial,
	})

	// Falls back to the SKU when the catalog name is missing
	assert.Contains(t, reply, "COLA_330ML_CASE24")
	assert.Contains(t, reply, "No committed date for the remainder")
}

func TestDraftReply_None(t *testing.T) {
	req := testRequest()
	reply := DraftReply(req, "Cola 330ml 24-pack", SimulationResult{
		Shortfall:      12000,
		Classification: ClassificationNone,
	})

	assert.Contains(t, reply, "We cannot cover this quantity on that date.")
	assert.Contains(t, reply, "1. Accept delivery later.")
}

func TestDraftReply_Deterministic(t *testing.T) {
	req := testRequest()
	result := SimulationResult{
		TotalSatisfiable: 5000,
		Shortfall:        7000,
		Classification:   ClassificationPartial,
	}

	assert.Equal(t, DraftReply(req, "Cola", result), DraftReply(req, "Cola", result))
}

func TestDraftReply_EndsWithSignature(t *testing.T) {
	req := testRequest()
	reply := DraftReply(req, "Cola", SimulationResult{Classification: ClassificationFull})
	assert.True(t, strings.HasSuffix(reply, "Thanks,\nPlanning Team"))
}
