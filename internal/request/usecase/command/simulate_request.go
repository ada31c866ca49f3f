package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tair/supply-agent/internal/request/domain"
)

// SimulateSupplyRequestCommand carries the structured fields extracted
// upstream from a DC supply-request email
type SimulateSupplyRequestCommand struct {
	SKU       string
	Quantity  int
	DueDate   string // YYYY-MM-DD
	Requester string
}

// SimulationOutcome is what the caller relays back through the reply channel
type SimulationOutcome struct {
	ScenarioID              string     `json:"scenario_id"`
	RequestID               uint       `json:"request_id"`
	SKU                     string     `json:"sku"`
	RequestedQty            int        `json:"requested_qty"`
	Requester               string     `json:"requester"`
	AvailableFromStock      int        `json:"available_from_stock"`
	AvailableFromProduction int        `json:"available_from_production"`
	TotalSatisfiable        int        `json:"total_satisfiable"`
	Shortfall               int        `json:"shortfall"`
	Classification          string     `json:"classification"`
	EstimatedResolutionDate *time.Time `json:"estimated_resolution_date"`
	ReplyText               string     `json:"reply_text"`
}

// SimulateSupplyRequestHandler handles the simulate supply request command:
// validate, read the product snapshot, run the feasibility simulation, record
// the outcome and draft the reply. Everything up to the write is pure local
// computation; validation failures never touch the store.
type SimulateSupplyRequestHandler struct {
	scenarios domain.ScenarioRepository
	products  domain.ProductReader

	now func() time.Time
}

// NewSimulateSupplyRequestHandler creates a new simulate supply request handler
func NewSimulateSupplyRequestHandler(scenarios domain.ScenarioRepository, products domain.ProductReader) *SimulateSupplyRequestHandler {
	return &SimulateSupplyRequestHandler{
		scenarios: scenarios,
		products:  products,
		now:       time.Now,
	}
}

// WithClock fixes the reference time, used by tests
func (h *SimulateSupplyRequestHandler) WithClock(now func() time.Time) *SimulateSupplyRequestHandler {
	h.now = now
	return h
}

// Handle executes the simulate supply request command
func (h *SimulateSupplyRequestHandler) Handle(ctx context.Context, cmd SimulateSupplyRequestCommand) (*SimulationOutcome, error) {
	if strings.TrimSpace(cmd.SKU) == "" {
		return nil, fmt.Errorf("%w: sku is required", domain.ErrInvalidInput)
	}

	if cmd.Quantity <= 0 {
		return nil, fmt.Errorf("%w: requested quantity must be positive", domain.ErrInvalidInput)
	}

	if strings.TrimSpace(cmd.Requester) == "" {
		return nil, fmt.Errorf("%w: requester is required", domain.ErrInvalidInput)
	}

	dueDate, err := time.Parse("2006-01-02", cmd.DueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: due_date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}

	snapshot, err := h.products.SnapshotBySKU(ctx, cmd.SKU)
	if err != nil {
		return nil, fmt.Errorf("failed to load product %q: %w", cmd.SKU, err)
	}

	request := &domain.Request{
		SKU:          cmd.SKU,
		RequestedQty: cmd.Quantity,
		DueDate:      dueDate,
		Requester:    strings.TrimSpace(cmd.Requester),
	}

	result := domain.Simulate(domain.SimulationInput{
		RequestedQty:   request.RequestedQty,
		DueDate:        request.DueDate,
		OnHand:         snapshot.OnHand,
		ProductionRate: snapshot.ProductionRate,
		Now:            h.now(),
	})

	scenario := buildScenario(request, snapshot.Name, result)

	if err := h.scenarios.RecordOutcome(request, scenario); err != nil {
		return nil, fmt.Errorf("failed to record scenario: %w", err)
	}

	return outcomeOf(request, scenario), nil
}

// buildScenario assembles the append-only outcome row, reply text included
func buildScenario(request *domain.Request, productName string, result domain.SimulationResult) *domain.Scenario {
	return &domain.Scenario{
		ScenarioID:              fmt.Sprintf("SCN-%s", uuid.New().String()[:8]),
		AvailableFromStock:      result.AvailableFromStock,
		AvailableFromProduction: result.AvailableFromProduction,
		TotalSatisfiable:        result.TotalSatisfiable,
		Shortfall:               result.Shortfall,
		Classification:          result.Classification,
		EstimatedResolutionDate: result.EstimatedResolutionDate,
		ReplyText:               domain.DraftReply(request, productName, result),
	}
}

func outcomeOf(request *domain.Request, scenario *domain.Scenario) *SimulationOutcome {
	return &SimulationOutcome{
		ScenarioID:              scenario.ScenarioID,
		RequestID:               request.ID,
		SKU:                     request.SKU,
		RequestedQty:            request.RequestedQty,
		Requester:               request.Requester,
		AvailableFromStock:      scenario.AvailableFromStock,
		AvailableFromProduction: scenario.AvailableFromProduction,
		TotalSatisfiable:        scenario.TotalSatisfiable,
		Shortfall:               scenario.Shortfall,
		Classification:          scenario.Classification,
		EstimatedResolutionDate: scenario.EstimatedResolutionDate,
		ReplyText:               scenario.ReplyText,
	}
}
