package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/storekit/admin-backend/internal/pagination"
	"github.com/storekit/admin-backend/internal/product/domain"
	"github.com/storekit/admin-backend/internal/storage"
)

var tracer = otel.Tracer("product-repository")

// ProductRepositoryWithTracing wraps ProductRepository with tracing
type ProductRepositoryWithTracing struct {
	*ProductRepository
}

// NewProductRepositoryWithTracing creates a new repository with tracing
func NewProductRepositoryWithTracing(store storage.Store) *ProductRepositoryWithTracing {
	return &ProductRepositoryWithTracing{
		ProductRepository: NewProductRepository(store),
	}
}

// Create with tracing
func (r *ProductRepositoryWithTracing) Create(ctx context.Context, input domain.ProductCreate) (*domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("product.name", input.Name),
			attribute.String("product.sku", input.SKU),
			attribute.Float64("product.price", input.Price),
		),
	)
	defer span.End()

	product, err := r.ProductRepository.Create(ctx, input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("product.id", product.ID))
	return product, nil
}

// Get with tracing
func (r *ProductRepositoryWithTracing) Get(ctx context.Context, id string) (*domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.Get",
		trace.WithAttributes(
			attribute.String("product.id", id),
		),
	)
	defer span.End()

	product, err := r.ProductRepository.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("product.name", product.Name),
		attribute.Bool("product.is_active", product.IsActive),
	)
	return product, nil
}

// List with tracing
func (r *ProductRepositoryWithTracing) List(ctx context.Context, params pagination.Params, filters domain.ProductFilters) ([]domain.Product, int, error) {
	ctx, span := tracer.Start(ctx, "repository.List",
		trace.WithAttributes(
			attribute.Int("query.page", params.Page),
			attribute.Int("query.page_size", params.PageSize),
		),
	)
	defer span.End()

	products, total, err := r.ProductRepository.List(ctx, params, filters)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, err
	}

	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, total, nil
}

// Update with tracing
func (r *ProductRepositoryWithTracing) Update(ctx context.Context, id string, update domain.ProductUpdate) (*domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(
			attribute.String("product.id", id),
		),
	)
	defer span.End()

	product, err := r.ProductRepository.Update(ctx, id, update)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return product, nil
}

// Delete with tracing
func (r *ProductRepositoryWithTracing) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(
			attribute.String("product.id", id),
		),
	)
	defer span.End()

	if err := r.ProductRepository.Delete(ctx, id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

// Search with tracing
func (r *ProductRepositoryWithTracing) Search(ctx context.Context, query string, limit int) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.Search",
		trace.WithAttributes(
			attribute.String("query.text", query),
			attribute.Int("query.limit", limit),
		),
	)
	defer span.End()

	products, err := r.ProductRepository.Search(ctx, query, limit)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, nil
}
