package query

import (
	"fmt"

	"github.com/tair/supply-agent/internal/product/domain"
)

// GetProductBySKUQuery represents the query to get a product by SKU
type GetProductBySKUQuery struct {
	SKU string
}

// GetProductBySKUHandler handles get product by SKU query
type GetProductBySKUHandler struct {
	repo domain.ProductRepository
}

// NewGetProductBySKUHandler creates a new get product by SKU handler
func NewGetProductBySKUHandler(repo domain.ProductRepository) *GetProductBySKUHandler {
	return &GetProductBySKUHandler{repo: repo}
}

// Handle executes the get product by SKU query
func (h *GetProductBySKUHandler) Handle(query GetProductBySKUQuery) (*domain.Product, error) {
	if query.SKU == "" {
		return nil, fmt.Errorf("sku is required")
	}

	product, err := h.repo.FindBySKU(query.SKU)
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}

	return product, nil
}
