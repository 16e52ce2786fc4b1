package command

import (
	"context"
	"fmt"

	"github.com/storekit/admin-backend/internal/siteconfig/domain"
)

// UpdateConfigCommand represents the command to update the site configuration
type UpdateConfigCommand struct {
	Update domain.SiteConfigUpdate
}

// UpdateConfigHandler handles site configuration updates
type UpdateConfigHandler struct {
	repo domain.SiteConfigRepository
}

// NewUpdateConfigHandler creates a new update config handler
func NewUpdateConfigHandler(repo domain.SiteConfigRepository) *UpdateConfigHandler {
	return &UpdateConfigHandler{repo: repo}
}

// Handle executes the update config command
func (h *UpdateConfigHandler) Handle(ctx context.Context, cmd UpdateConfigCommand) (*domain.SiteConfig, error) {
	config, err := h.repo.Update(ctx, cmd.Update)
	if err != nil {
		return nil, fmt.Errorf("failed to update site config: %w", err)
	}
	return config, nil
}
