package command

import (
	"context"
	"fmt"

	"github.com/storekit/admin-backend/internal/apperrors"
	"github.com/storekit/admin-backend/internal/siteconfig/domain"
)

// CreateConfigCommand represents the command to create the site configuration
type CreateConfigCommand struct {
	Config domain.SiteConfigCreate
}

// CreateConfigHandler handles site configuration creation
type CreateConfigHandler struct {
	repo domain.SiteConfigRepository
}

// NewCreateConfigHandler creates a new create config handler
func NewCreateConfigHandler(repo domain.SiteConfigRepository) *CreateConfigHandler {
	return &CreateConfigHandler{repo: repo}
}

// Handle executes the create config command
func (h *CreateConfigHandler) Handle(ctx context.Context, cmd CreateConfigCommand) (*domain.SiteConfig, error) {
	if cmd.Config.CompanyName == "" {
		return nil, apperrors.Invalid("company_name is required")
	}

	config, err := h.repo.Create(ctx, cmd.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to create site config: %w", err)
	}
	return config, nil
}
