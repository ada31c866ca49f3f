package command

import (
	"context"
	"fmt"
	"time"

	"github.com/tair/supply-agent/internal/request/domain"
)

// ResimulateRequestCommand re-runs the feasibility check for an existing
// request against current catalog figures. The original request stays
// untouched; a new scenario row is appended.
type ResimulateRequestCommand struct {
	RequestID uint
}

// ResimulateRequestHandler handles resimulate request command
type ResimulateRequestHandler struct {
	requests  domain.RequestRepository
	scenarios domain.ScenarioRepository
	products  domain.ProductReader

	now func() time.Time
}

// NewResimulateRequestHandler creates a new resimulate request handler
func NewResimulateRequestHandler(
	requests domain.RequestRepository,
	scenarios domain.ScenarioRepository,
	products domain.ProductReader,
) *ResimulateRequestHandler {
	return &ResimulateRequestHandler{
		requests:  requests,
		scenarios: scenarios,
		products:  products,
		now:       time.Now,
	}
}

// WithClock fixes the reference time, used by tests
func (h *ResimulateRequestHandler) WithClock(now func() time.Time) *ResimulateRequestHandler {
	h.now = now
	return h
}

// Handle executes the resimulate request command
func (h *ResimulateRequestHandler) Handle(ctx context.Context, cmd ResimulateRequestCommand) (*SimulationOutcome, error) {
	if cmd.RequestID == 0 {
		return nil, fmt.Errorf("%w: request_id is required", domain.ErrInvalidInput)
	}

	request, err := h.requests.FindByID(cmd.RequestID)
	if err != nil {
		return nil, fmt.Errorf("failed to load request %d: %w", cmd.RequestID, err)
	}

	snapshot, err := h.products.SnapshotBySKU(ctx, request.SKU)
	if err != nil {
		return nil, fmt.Errorf("failed to load product %q: %w", request.SKU, err)
	}

	result := domain.Simulate(domain.SimulationInput{
		RequestedQty:   request.RequestedQty,
		DueDate:        request.DueDate,
		OnHand:         snapshot.OnHand,
		ProductionRate: snapshot.ProductionRate,
		Now:            h.now(),
	})

	scenario := buildScenario(request, snapshot.Name, result)
	scenario.RequestID = request.ID

	if err := h.scenarios.AppendScenario(scenario); err != nil {
		return nil, fmt.Errorf("failed to append scenario: %w", err)
	}

	return outcomeOf(request, scenario), nil
}
