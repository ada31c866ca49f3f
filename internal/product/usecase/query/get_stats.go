package query

import (
	"fmt"

	"github.com/tair/supply-agent/internal/product/domain"
)

// GetCatalogStatsHandler handles catalog stats queries
type GetCatalogStatsHandler struct {
	repo domain.ProductRepository
}

// NewGetCatalogStatsHandler creates a new catalog stats handler
func NewGetCatalogStatsHandler(repo domain.ProductRepository) *GetCatalogStatsHandler {
	return &GetCatalogStatsHandler{repo: repo}
}

// Handle executes the catalog stats query
func (h *GetCatalogStatsHandler) Handle() (*domain.CatalogStats, error) {
	stats, err := h.repo.Stats()
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog stats: %w", err)
	}

	return stats, nil
}
