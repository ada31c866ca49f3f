package query

import (
	"fmt"

	"github.com/tair/supply-agent/internal/request/domain"
)

// ListRequestsQuery represents a query to list requests
type ListRequestsQuery struct {
	Limit  int
	Offset int
}

// ListRequestsHandler handles list requests queries
type ListRequestsHandler struct {
	requests domain.RequestRepository
}

// NewListRequestsHandler creates a new list requests handler
func NewListRequestsHandler(requests domain.RequestRepository) *ListRequestsHandler {
	return &ListRequestsHandler{requests: requests}
}

// Handle executes the list requests query
func (h *ListRequestsHandler) Handle(query ListRequestsQuery) ([]domain.Request, error) {
	if query.Limit <= 0 {
		query.Limit = 10
	}
	if query.Limit > 100 {
		query.Limit = 100
	}
	if query.Offset < 0 {
		query.Offset = 0
	}

	requests, err := h.requests.FindAll(query.Limit, query.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	return requests, nil
}
