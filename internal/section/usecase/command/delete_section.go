package command

import (
	"context"
	"fmt"

	"github.com/storekit/admin-backend/internal/section/domain"
)

// DeleteSectionCommand represents the command to delete a section
type DeleteSectionCommand struct {
	ID string
}

// DeleteSectionHandler handles section deletion
type DeleteSectionHandler struct {
	repo domain.SectionRepository
}

// NewDeleteSectionHandler creates a new delete section handler
func NewDeleteSectionHandler(repo domain.SectionRepository) *DeleteSectionHandler {
	return &DeleteSectionHandler{repo: repo}
}

// Handle executes the delete section command
func (h *DeleteSectionHandler) Handle(ctx context.Context, cmd DeleteSectionCommand) error {
	if err := h.repo.Delete(ctx, cmd.ID); err != nil {
		return fmt.Errorf("failed to delete section: %w", err)
	}
	return nil
}
