package query

import (
	"fmt"

	"github.com/tair/supply-agent/internal/request/domain"
)

// GetRequestQuery represents a query to get a request by ID
type GetRequestQuery struct {
	RequestID uint
}

// GetRequestHandler handles get request queries
type GetRequestHandler struct {
	requests domain.RequestRepository
}

// NewGetRequestHandler creates a new get request handler
func NewGetRequestHandler(requests domain.RequestRepository) *GetRequestHandler {
	return &GetRequestHandler{requests: requests}
}

// Handle returns the request with its full scenario history, newest first
func (h *GetRequestHandler) Handle(query GetRequestQuery) (*domain.Request, error) {
	if query.RequestID == 0 {
		return nil, fmt.Errorf("%w: request_id is required", domain.ErrInvalidInput)
	}

	request, err := h.requests.FindByIDWithScenarios(query.RequestID)
	if err != nil {
		return nil, fmt.Errorf("failed to get request: %w", err)
	}

	return request, nil
}
