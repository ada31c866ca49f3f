package query

import (
	"fmt"

	"github.com/tair/supply-agent/internal/product/domain"
)

// ListProductsQuery represents the query to list products
type ListProductsQuery struct {
	Limit  int
	Offset int
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(query ListProductsQuery) ([]domain.Product, error) {
	if query.Limit <= 0 {
		query.Limit = 10
	}
	if query.Limit > 100 {
		query.Limit = 100
	}
	if query.Offset < 0 {
		query.Offset = 0
	}

	products, err := h.repo.FindAll(query.Limit, query.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}
