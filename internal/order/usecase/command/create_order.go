package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/storekit/admin-backend/internal/apperrors"
	"github.com/storekit/admin-backend/internal/order/domain"
	"github.com/storekit/admin-backend/kafka"
	"github.com/storekit/admin-backend/pkg/logger"
)

// EventPublisher publishes order lifecycle events. A nil publisher disables
// event emission without affecting order persistence.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, event kafka.OrderCreatedEvent) error
	PublishOrderStatusChanged(ctx context.Context, event kafka.OrderStatusChangedEvent) error
}

// CreateOrderCommand represents the command to create a new order
type CreateOrderCommand struct {
	Order domain.OrderCreate
}

// CreateOrderHandler handles order creation
type CreateOrderHandler struct {
	repo      domain.OrderRepository
	publisher EventPublisher
}

// NewCreateOrderHandler creates a new create order handler
func NewCreateOrderHandler(repo domain.OrderRepository, publisher EventPublisher) *CreateOrderHandler {
	return &CreateOrderHandler{repo: repo, publisher: publisher}
}

// Handle executes the create order command
func (h *CreateOrderHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*domain.Order, error) {
	in := cmd.Order
	if in.CustomerName == "" {
		return nil, apperrors.Invalid("customer_name is required")
	}
	if !strings.Contains(in.CustomerEmail, "@") {
		return nil, apperrors.Invalid("customer_email must be a valid email address")
	}
	if in.ShippingAddress == "" {
		return nil, apperrors.Invalid("shipping_address is required")
	}
	if len(in.Items) == 0 {
		return nil, apperrors.Invalid("order must contain at least one item")
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, apperrors.Invalid("item quantity must be greater than zero")
		}
		if item.Price <= 0 || item.Subtotal <= 0 {
			return nil, apperrors.Invalid("item price and subtotal must be greater than zero")
		}
	}
	if in.Total < 0 || in.Subtotal < 0 || in.Tax < 0 || in.ShippingCost < 0 {
		return nil, apperrors.Invalid("order amounts cannot be negative")
	}
	if in.Status != "" && !domain.ValidStatus(in.Status) {
		return nil, apperrors.Invalid("invalid order status: " + in.Status)
	}

	order, err := h.repo.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if h.publisher != nil {
		event := kafka.OrderCreatedEvent{
			OrderID:       order.ID,
			OrderNumber:   order.OrderNumber,
			CustomerEmail: order.CustomerEmail,
			ItemCount:     len(order.Items),
			Total:         order.Total,
			Status:        order.Status,
		}
		if err := h.publisher.PublishOrderCreated(ctx, event); err != nil {
			// The order is already persisted; event loss is logged, not fatal.
			logger.Logger.Error().
				Err(err).
				Str("order_id", order.ID).
				Str("order_number", order.OrderNumber).
				Msg("Failed to publish order created event")
		}
	}

	return order, nil
}
