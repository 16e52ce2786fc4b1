package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/storekit/admin-backend/internal/order/domain"
	"github.com/storekit/admin-backend/internal/pagination"
	"github.com/storekit/admin-backend/internal/storage"
)

var tracer = otel.Tracer("order-repository")

// OrderRepositoryWithTracing wraps OrderRepository with tracing
type OrderRepositoryWithTracing struct {
	*OrderRepository
}

// NewOrderRepositoryWithTracing creates a new repository with tracing
func NewOrderRepositoryWithTracing(store storage.Store) *OrderRepositoryWithTracing {
	return &OrderRepositoryWithTracing{
		OrderRepository: NewOrderRepository(store),
	}
}

// Create with tracing
func (r *OrderRepositoryWithTracing) Create(ctx context.Context, input domain.OrderCreate) (*domain.Order, error) {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("order.customer_email", input.CustomerEmail),
			attribute.Int("order.item_count", len(input.Items)),
			attribute.Float64("order.total", input.Total),
		),
	)
	defer span.End()

	order, err := r.OrderRepository.Create(ctx, input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("order.id", order.ID),
		attribute.String("order.number", order.OrderNumber),
	)
	return order, nil
}

// Get with tracing
func (r *OrderRepositoryWithTracing) Get(ctx context.Context, id string) (*domain.Order, error) {
	ctx, span := tracer.Start(ctx, "repository.Get",
		trace.WithAttributes(
			attribute.String("order.id", id),
		),
	)
	defer span.End()

	order, err := r.OrderRepository.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("order.status", order.Status))
	return order, nil
}

// GetByNumber with tracing
func (r *OrderRepositoryWithTracing) GetByNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	ctx, span := tracer.Start(ctx, "repository.GetByNumber",
		trace.WithAttributes(
			attribute.String("order.number", orderNumber),
		),
	)
	defer span.End()

	order, err := r.OrderRepository.GetByNumber(ctx, orderNumber)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("order.id", order.ID))
	return order, nil
}

// List with tracing
func (r *OrderRepositoryWithTracing) List(ctx context.Context, params pagination.Params, filters domain.OrderFilters) ([]domain.Order, int, error) {
	ctx, span := tracer.Start(ctx, "repository.List",
		trace.WithAttributes(
			attribute.Int("query.page", params.Page),
			attribute.Int("query.page_size", params.PageSize),
		),
	)
	defer span.End()

	orders, total, err := r.OrderRepository.List(ctx, params, filters)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, err
	}

	span.SetAttributes(attribute.Int("result.count", len(orders)))
	return orders, total, nil
}

// Update with tracing
func (r *OrderRepositoryWithTracing) Update(ctx context.Context, id string, update domain.OrderUpdate) (*domain.Order, error) {
	ctx, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(
			attribute.String("order.id", id),
		),
	)
	defer span.End()

	order, err := r.OrderRepository.Update(ctx, id, update)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("order.status", order.Status))
	return order, nil
}

// Delete with tracing
func (r *OrderRepositoryWithTracing) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(
			attribute.String("order.id", id),
		),
	)
	defer span.End()

	if err := r.OrderRepository.Delete(ctx, id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

// Statistics with tracing
func (r *OrderRepositoryWithTracing) Statistics(ctx context.Context) (*domain.OrderStatistics, error) {
	ctx, span := tracer.Start(ctx, "repository.Statistics")
	defer span.End()

	stats, err := r.OrderRepository.Statistics(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.total_orders", stats.TotalOrders))
	return stats, nil
}
