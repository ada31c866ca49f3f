package command

import (
	"fmt"

	"github.com/tair/supply-agent/internal/product/domain"
)

// CreateProductCommand represents the command to register a new SKU
type CreateProductCommand struct {
	SKU            string
	Name           string
	Description    string
	OnHand         int
	ProductionRate float64
}

// CreateProductHandler handles create product command
type CreateProductHandler struct {
	repo domain.ProductRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(cmd CreateProductCommand) (*domain.Product, error) {
	if cmd.SKU == "" {
		return nil, fmt.Errorf("sku is required")
	}

	if cmd.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	if cmd.OnHand < 0 {
		return nil, fmt.Errorf("on_hand cannot be negative")
	}

	if cmd.ProductionRate < 0 {
		return nil, fmt.Errorf("production_rate cannot be negative")
	}

	product := &domain.Product{
		SKU:            cmd.SKU,
		Name:           cmd.Name,
		Description:    cmd.Description,
		OnHand:         cmd.OnHand,
		ProductionRate: cmd.ProductionRate,
	}

	if err := h.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}
