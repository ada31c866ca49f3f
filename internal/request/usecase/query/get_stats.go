package query

import (
	"fmt"

	"github.com/tair/supply-agent/internal/request/domain"
)

// ScenarioStats aggregates outcomes by feasibility classification.
// OpenShortfall sums the shortfall of each request's latest scenario, so it
// reflects what is still unresolved rather than the full simulation history.
type ScenarioStats struct {
	Total         int64 `json:"total"`
	Full          int64 `json:"full"`
	Partial       int64 `json:"partial"`
	None          int64 `json:"none"`
	OpenShortfall int64 `json:"open_shortfall"`
}

// GetScenarioStatsHandler handles scenario stats queries
type GetScenarioStatsHandler struct {
	scenarios domain.ScenarioRepository
}

// NewGetScenarioStatsHandler creates a new scenario stats handler
func NewGetScenarioStatsHandler(scenarios domain.ScenarioRepository) *GetScenarioStatsHandler {
	return &GetScenarioStatsHandler{scenarios: scenarios}
}

// Handle executes the scenario stats query
func (h *GetScenarioStatsHandler) Handle() (*ScenarioStats, error) {
	counts, err := h.scenarios.CountByClassification()
	if err != nil {
		return nil, fmt.Errorf("failed to count scenarios: %w", err)
	}

	openShortfall, err := h.scenarios.SumOpenShortfall()
	if err != nil {
		return nil, fmt.Errorf("failed to sum open shortfall: %w", err)
	}

	stats := &ScenarioStats{
		Full:          counts[domain.ClassificationFull],
		Partial:       counts[domain.ClassificationPartial],
		None:          counts[domain.ClassificationNone],
		OpenShortfall: openShortfall,
	}
	stats.Total = stats.Full + stats.Partial + stats.None

	return stats, nil
}
