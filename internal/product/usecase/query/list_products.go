package query

import (
	"context"
	"fmt"

	"github.com/storekit/admin-backend/internal/pagination"
	"github.com/storekit/admin-backend/internal/product/domain"
)

// ListProductsQuery represents the query to list products with pagination
type ListProductsQuery struct {
	Params  pagination.Params
	Filters domain.ProductFilters
}

// ListProductsHandler handles product listing
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(ctx context.Context, q ListProductsQuery) (*pagination.Response, error) {
	products, total, err := h.repo.List(ctx, q.Params, q.Filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	resp := pagination.NewResponse(q.Params, total, products)
	return &resp, nil
}
