package command

import (
	"context"
	"fmt"

	"github.com/storekit/admin-backend/internal/apperrors"
	"github.com/storekit/admin-backend/internal/category/domain"
)

// UpdateCategoryCommand represents the command to update a category
type UpdateCategoryCommand struct {
	ID     string
	Update domain.CategoryUpdate
}

// UpdateCategoryHandler handles category updates
type UpdateCategoryHandler struct {
	repo domain.CategoryRepository
}

// NewUpdateCategoryHandler creates a new update category handler
func NewUpdateCategoryHandler(repo domain.CategoryRepository) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{repo: repo}
}

// Handle executes the update category command
func (h *UpdateCategoryHandler) Handle(ctx context.Context, cmd UpdateCategoryCommand) (*domain.Category, error) {
	if cmd.Update.Name != nil && *cmd.Update.Name == "" {
		return nil, apperrors.Invalid("category name cannot be empty")
	}
	if cmd.Update.Order != nil && *cmd.Update.Order < 0 {
		return nil, apperrors.Invalid("order cannot be negative")
	}

	category, err := h.repo.Update(ctx, cmd.ID, cmd.Update)
	if err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}
