package command

import (
	"context"
	"fmt"

	"github.com/storekit/admin-backend/internal/apperrors"
	"github.com/storekit/admin-backend/internal/section/domain"
)

// UpdateSectionCommand represents the command to update a section
type UpdateSectionCommand struct {
	ID     string
	Update domain.SectionUpdate
}

// UpdateSectionHandler handles section updates
type UpdateSectionHandler struct {
	repo domain.SectionRepository
}

// NewUpdateSectionHandler creates a new update section handler
func NewUpdateSectionHandler(repo domain.SectionRepository) *UpdateSectionHandler {
	return &UpdateSectionHandler{repo: repo}
}

// Handle executes the update section command
func (h *UpdateSectionHandler) Handle(ctx context.Context, cmd UpdateSectionCommand) (*domain.Section, error) {
	if cmd.Update.Name != nil && *cmd.Update.Name == "" {
		return nil, apperrors.Invalid("section name cannot be empty")
	}
	if cmd.Update.Order != nil && *cmd.Update.Order < 0 {
		return nil, apperrors.Invalid("order cannot be negative")
	}

	section, err := h.repo.Update(ctx, cmd.ID, cmd.Update)
	if err != nil {
		return nil, fmt.Errorf("failed to update section: %w", err)
	}
	return section, nil
}
