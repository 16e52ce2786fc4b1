package query

import (
	"context"
	"fmt"

	"github.com/storekit/admin-backend/internal/apperrors"
	"github.com/storekit/admin-backend/internal/product/domain"
)

// Search result windows are capped independently of listing pagination.
const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 50
)

// SearchProductsQuery represents the query to search products by text
type SearchProductsQuery struct {
	Query string
	Limit int
}

// SearchProductsHandler handles product similarity search
type SearchProductsHandler struct {
	repo domain.ProductRepository
}

// NewSearchProductsHandler creates a new search products handler
func NewSearchProductsHandler(repo domain.ProductRepository) *SearchProductsHandler {
	return &SearchProductsHandler{repo: repo}
}

// Handle executes the search products query
func (h *SearchProductsHandler) Handle(ctx context.Context, q SearchProductsQuery) ([]domain.Product, error) {
	if q.Query == "" {
		return nil, apperrors.Invalid("search query is required")
	}
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		return nil, apperrors.Invalid("limit must be between 1 and 50")
	}

	products, err := h.repo.Search(ctx, q.Query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}
