package command

import (
	"fmt"

	"github.com/tair/supply-agent/internal/product/domain"
)

// SetProductionRateCommand updates the daily production rate for a product
type SetProductionRateCommand struct {
	ProductID      uint
	ProductionRate float64
}

// SetProductionRateHandler handles set production rate command
type SetProductionRateHandler struct {
	repo domain.ProductRepository
}

// NewSetProductionRateHandler creates a new set production rate handler
func NewSetProductionRateHandler(repo domain.ProductRepository) *SetProductionRateHandler {
	return &SetProductionRateHandler{repo: repo}
}

// Handle executes the set production rate command
func (h *SetProductionRateHandler) Handle(cmd SetProductionRateCommand) error {
	if cmd.ProductID == 0 {
		return fmt.Errorf("product_id is required")
	}

	if cmd.ProductionRate < 0 {
		return fmt.Errorf("production_rate cannot be negative")
	}

	if err := h.repo.UpdateProductionRate(cmd.ProductID, cmd.ProductionRate); err != nil {
		return fmt.Errorf("failed to update production rate: %w", err)
	}

	return nil
}
