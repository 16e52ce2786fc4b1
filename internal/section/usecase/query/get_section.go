package query

import (
	"context"
	"fmt"

	"github.com/storekit/admin-backend/internal/section/domain"
)

// GetSectionQuery represents the query to get a section by ID
type GetSectionQuery struct {
	ID string
}

// GetSectionHandler handles section retrieval
type GetSectionHandler struct {
	repo domain.SectionRepository
}

// NewGetSectionHandler creates a new get section handler
func NewGetSectionHandler(repo domain.SectionRepository) *GetSectionHandler {
	return &GetSectionHandler{repo: repo}
}

// Handle executes the get section query
func (h *GetSectionHandler) Handle(ctx context.Context, q GetSectionQuery) (*domain.Section, error) {
	section, err := h.repo.Get(ctx, q.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get section: %w", err)
	}
	return section, nil
}
