package query

import (
	"context"
	"fmt"

	"github.com/storekit/admin-backend/internal/order/domain"
)

// GetOrderByNumberQuery represents the query to get an order by display number
type GetOrderByNumberQuery struct {
	OrderNumber string
}

// GetOrderByNumberHandler handles order retrieval by number
type GetOrderByNumberHandler struct {
	repo domain.OrderRepository
}

// NewGetOrderByNumberHandler creates a new get order by number handler
func NewGetOrderByNumberHandler(repo domain.OrderRepository) *GetOrderByNumberHandler {
	return &GetOrderByNumberHandler{repo: repo}
}

// Handle executes the get order by number query
func (h *GetOrderByNumberHandler) Handle(ctx context.Context, q GetOrderByNumberQuery) (*domain.Order, error) {
	order, err := h.repo.GetByNumber(ctx, q.OrderNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get order by number: %w", err)
	}
	return order, nil
}
