package command

import (
	"context"
	"fmt"

	"github.com/storekit/admin-backend/internal/apperrors"
	"github.com/storekit/admin-backend/internal/order/domain"
	"github.com/storekit/admin-backend/kafka"
	"github.com/storekit/admin-backend/pkg/logger"
)

// UpdateOrderCommand represents the command to update an order
type UpdateOrderCommand struct {
	ID     string
	Update domain.OrderUpdate
}

// UpdateOrderHandler handles order updates
type UpdateOrderHandler struct {
	repo      domain.OrderRepository
	publisher EventPublisher
}

// NewUpdateOrderHandler creates a new update order handler
func NewUpdateOrderHandler(repo domain.OrderRepository, publisher EventPublisher) *UpdateOrderHandler {
	return &UpdateOrderHandler{repo: repo, publisher: publisher}
}

// Handle executes the update order command
func (h *UpdateOrderHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*domain.Order, error) {
	if cmd.Update.Status != nil && !domain.ValidStatus(*cmd.Update.Status) {
		return nil, apperrors.Invalid("invalid order status: " + *cmd.Update.Status)
	}

	oldStatus := ""
	if cmd.Update.Status != nil {
		existing, err := h.repo.Get(ctx, cmd.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to update order: %w", err)
		}
		oldStatus = existing.Status
	}

	order, err := h.repo.Update(ctx, cmd.ID, cmd.Update)
	if err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	if h.publisher != nil && cmd.Update.Status != nil && oldStatus != order.Status {
		event := kafka.OrderStatusChangedEvent{
			OrderID:     order.ID,
			OrderNumber: order.OrderNumber,
			OldStatus:   oldStatus,
			NewStatus:   order.Status,
		}
		if err := h.publisher.PublishOrderStatusChanged(ctx, event); err != nil {
			// The update is already persisted; event loss is logged, not fatal.
			logger.Logger.Error().
				Err(err).
				Str("order_id", order.ID).
				Str("new_status", order.Status).
				Msg("Failed to publish order status changed event")
		}
	}

	return order, nil
}
