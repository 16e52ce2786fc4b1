package command

import (
	"context"
	"fmt"

	"github.com/storekit/admin-backend/internal/apperrors"
	"github.com/storekit/admin-backend/internal/category/domain"
)

// CreateCategoryCommand represents the command to create a new category
type CreateCategoryCommand struct {
	Name             string
	Description      string
	SectionID        string
	ParentCategoryID string
	IsActive         bool
	Order            int
	Slug             string
	ImageURL         string
}

// CreateCategoryHandler handles category creation
type CreateCategoryHandler struct {
	repo domain.CategoryRepository
}

// NewCreateCategoryHandler creates a new create category handler
func NewCreateCategoryHandler(repo domain.CategoryRepository) *CreateCategoryHandler {
	return &CreateCategoryHandler{repo: repo}
}

// Handle executes the create category command
func (h *CreateCategoryHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) (*domain.Category, error) {
	if cmd.Name == "" {
		return nil, apperrors.Invalid("category name is required")
	}
	if cmd.SectionID == "" {
		return nil, apperrors.Invalid("section_id is required")
	}
	if cmd.Order < 0 {
		return nil, apperrors.Invalid("order cannot be negative")
	}

	category, err := h.repo.Create(ctx, domain.CategoryCreate{
		Name:             cmd.Name,
		Description:      cmd.Description,
		SectionID:        cmd.SectionID,
		ParentCategoryID: cmd.ParentCategoryID,
		IsActive:         cmd.IsActive,
		Order:            cmd.Order,
		Slug:             cmd.Slug,
		ImageURL:         cmd.ImageURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}
