package query

import (
	"context"
	"fmt"

	"github.com/storekit/admin-backend/internal/siteconfig/domain"
)

// GetConfigQuery represents the query to fetch the site configuration
type GetConfigQuery struct{}

// GetConfigHandler handles get config query
type GetConfigHandler struct {
	repo domain.SiteConfigRepository
}

// NewGetConfigHandler creates a new get config handler
func NewGetConfigHandler(repo domain.SiteConfigRepository) *GetConfigHandler {
	return &GetConfigHandler{repo: repo}
}

// Handle executes the get config query
func (h *GetConfigHandler) Handle(ctx context.Context, _ GetConfigQuery) (*domain.SiteConfig, error) {
	config, err := h.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get site config: %w", err)
	}
	return config, nil
}
