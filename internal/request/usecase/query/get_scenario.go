package query

import (
	"fmt"

	"github.com/tair/supply-agent/internal/request/domain"
)

// GetScenarioQuery represents a query to get a scenario by its external ID
type GetScenarioQuery struct {
	ScenarioID string
}

// GetScenarioHandler handles get scenario queries
type GetScenarioHandler struct {
	scenarios domain.ScenarioRepository
}

// NewGetScenarioHandler creates a new get scenario handler
func NewGetScenarioHandler(scenarios domain.ScenarioRepository) *GetScenarioHandler {
	return &GetScenarioHandler{scenarios: scenarios}
}

// Handle executes the get scenario query
func (h *GetScenarioHandler) Handle(query GetScenarioQuery) (*domain.Scenario, error) {
	if query.ScenarioID == "" {
		return nil, fmt.Errorf("%w: scenario_id is required", domain.ErrInvalidInput)
	}

	scenario, err := h.scenarios.FindByScenarioID(query.ScenarioID)
	if err != nil {
		return nil, fmt.Errorf("failed to get scenario: %w", err)
	}

	return scenario, nil
}
