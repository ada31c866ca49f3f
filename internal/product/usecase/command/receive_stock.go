package command

import (
	"fmt"

	"github.com/tair/supply-agent/internal/product/domain"
)

// ReceiveStockCommand sets the current on-hand quantity for a product.
// Inventory counts come from the warehouse system; the command records the
// reported figure rather than incrementing.
type ReceiveStockCommand struct {
	ProductID uint
	OnHand    int
}

// ReceiveStockHandler handles receive stock command
type ReceiveStockHandler struct {
	repo domain.ProductRepository
}

// NewReceiveStockHandler creates a new receive stock handler
func NewReceiveStockHandler(repo domain.ProductRepository) *ReceiveStockHandler {
	return &ReceiveStockHandler{repo: repo}
}

// Handle executes the receive stock command
func (h *ReceiveStockHandler) Handle(cmd ReceiveStockCommand) error {
	if cmd.ProductID == 0 {
		return fmt.Errorf("product_id is required")
	}

	if cmd.OnHand < 0 {
		return fmt.Errorf("on_hand cannot be negative")
	}

	if err := h.repo.UpdateOnHand(cmd.ProductID, cmd.OnHand); err != nil {
		return fmt.Errorf("failed to update on-hand quantity: %w", err)
	}

	return nil
}
