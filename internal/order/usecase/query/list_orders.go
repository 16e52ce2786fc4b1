package query

import (
	"context"
	"fmt"

	"github.com/storekit/admin-backend/internal/order/domain"
	"github.com/storekit/admin-backend/internal/pagination"
)

// ListOrdersQuery represents the query to list orders with pagination
type ListOrdersQuery struct {
	Params  pagination.Params
	Filters domain.OrderFilters
}

// ListOrdersHandler handles order listing
type ListOrdersHandler struct {
	repo domain.OrderRepository
}

// NewListOrdersHandler creates a new list orders handler
func NewListOrdersHandler(repo domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{repo: repo}
}

// Handle executes the list orders query
func (h *ListOrdersHandler) Handle(ctx context.Context, q ListOrdersQuery) (*pagination.Response, error) {
	orders, total, err := h.repo.List(ctx, q.Params, q.Filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	resp := pagination.NewResponse(q.Params, total, orders)
	return &resp, nil
}
