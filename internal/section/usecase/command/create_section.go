package command

import (
	"context"
	"fmt"

	"github.com/storekit/admin-backend/internal/apperrors"
	"github.com/storekit/admin-backend/internal/section/domain"
)

// CreateSectionCommand represents the command to create a new section
type CreateSectionCommand struct {
	Name            string
	Description     string
	Order           int
	IsActive        bool
	ParentSectionID string
}

// CreateSectionHandler handles section creation
type CreateSectionHandler struct {
	repo domain.SectionRepository
}

// NewCreateSectionHandler creates a new create section handler
func NewCreateSectionHandler(repo domain.SectionRepository) *CreateSectionHandler {
	return &CreateSectionHandler{repo: repo}
}

// Handle executes the create section command
func (h *CreateSectionHandler) Handle(ctx context.Context, cmd CreateSectionCommand) (*domain.Section, error) {
	if cmd.Name == "" {
		return nil, apperrors.Invalid("section name is required")
	}
	if cmd.Order < 0 {
		return nil, apperrors.Invalid("order cannot be negative")
	}

	section, err := h.repo.Create(ctx, domain.SectionCreate{
		Name:            cmd.Name,
		Description:     cmd.Description,
		Order:           cmd.Order,
		IsActive:        cmd.IsActive,
		ParentSectionID: cmd.ParentSectionID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create section: %w", err)
	}
	return section, nil
}
