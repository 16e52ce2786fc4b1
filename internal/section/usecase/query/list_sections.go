package query

import (
	"context"
	"fmt"

	"github.com/storekit/admin-backend/internal/pagination"
	"github.com/storekit/admin-backend/internal/section/domain"
)

// ListSectionsQuery represents the query to list sections with pagination
type ListSectionsQuery struct {
	Params  pagination.Params
	Filters domain.SectionFilters
}

// ListSectionsHandler handles section listing
type ListSectionsHandler struct {
	repo domain.SectionRepository
}

// NewListSectionsHandler creates a new list sections handler
func NewListSectionsHandler(repo domain.SectionRepository) *ListSectionsHandler {
	return &ListSectionsHandler{repo: repo}
}

// Handle executes the list sections query
func (h *ListSectionsHandler) Handle(ctx context.Context, q ListSectionsQuery) (*pagination.Response, error) {
	sections, total, err := h.repo.List(ctx, q.Params, q.Filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}
	resp := pagination.NewResponse(q.Params, total, sections)
	return &resp, nil
}
