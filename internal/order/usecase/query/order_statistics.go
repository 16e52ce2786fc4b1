package query

import (
	"context"
	"fmt"

	"github.com/storekit/admin-backend/internal/order/domain"
)

// OrderStatisticsQuery represents the query for the aggregate order statistics
type OrderStatisticsQuery struct{}

// OrderStatisticsHandler handles order statistics
type OrderStatisticsHandler struct {
	repo domain.OrderRepository
}

// NewOrderStatisticsHandler creates a new order statistics handler
func NewOrderStatisticsHandler(repo domain.OrderRepository) *OrderStatisticsHandler {
	return &OrderStatisticsHandler{repo: repo}
}

// Handle executes the order statistics query
func (h *OrderStatisticsHandler) Handle(ctx context.Context, _ OrderStatisticsQuery) (*domain.OrderStatistics, error) {
	stats, err := h.repo.Statistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get order statistics: %w", err)
	}
	return stats, nil
}
