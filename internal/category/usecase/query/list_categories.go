package query

import (
	"context"
	"fmt"

	"github.com/storekit/admin-backend/internal/category/domain"
	"github.com/storekit/admin-backend/internal/pagination"
)

// ListCategoriesQuery represents the query to list categories with pagination
type ListCategoriesQuery struct {
	Params  pagination.Params
	Filters domain.CategoryFilters
}

// ListCategoriesHandler handles category listing
type ListCategoriesHandler struct {
	repo domain.CategoryRepository
}

// NewListCategoriesHandler creates a new list categories handler
func NewListCategoriesHandler(repo domain.CategoryRepository) *ListCategoriesHandler {
	return &ListCategoriesHandler{repo: repo}
}

// Handle executes the list categories query
func (h *ListCategoriesHandler) Handle(ctx context.Context, q ListCategoriesQuery) (*pagination.Response, error) {
	categories, total, err := h.repo.List(ctx, q.Params, q.Filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	resp := pagination.NewResponse(q.Params, total, categories)
	return &resp, nil
}
