package query

import (
	"fmt"

	"github.com/tair/supply-agent/internal/request/domain"
)

// ListScenariosQuery represents a query to list simulation outcomes
type ListScenariosQuery struct {
	Limit     int
	Offset    int
	RequestID uint // optional, filters to one request's history
}

// ListScenariosHandler handles list scenarios queries
type ListScenariosHandler struct {
	scenarios domain.ScenarioRepository
}

// NewListScenariosHandler creates a new list scenarios handler
func NewListScenariosHandler(scenarios domain.ScenarioRepository) *ListScenariosHandler {
	return &ListScenariosHandler{scenarios: scenarios}
}

// Handle executes the list scenarios query
func (h *ListScenariosHandler) Handle(query ListScenariosQuery) ([]domain.Scenario, error) {
	if query.RequestID != 0 {
		scenarios, err := h.scenarios.FindByRequestID(query.RequestID)
		if err != nil {
			return nil, fmt.Errorf("failed to list scenarios for request %d: %w", query.RequestID, err)
		}
		return scenarios, nil
	}

	if query.Limit <= 0 {
		query.Limit = 10
	}
	if query.Limit > 100 {
		query.Limit = 100
	}
	if query.Offset < 0 {
		query.Offset = 0
	}

	scenarios, err := h.scenarios.FindAll(query.Limit, query.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}

	return scenarios, nil
}
