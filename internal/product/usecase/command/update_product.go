package command

import (
	"context"
	"fmt"

	"github.com/storekit/admin-backend/internal/apperrors"
	"github.com/storekit/admin-backend/internal/product/domain"
)

// UpdateProductCommand represents the command to update a product
type UpdateProductCommand struct {
	ID     string
	Update domain.ProductUpdate
}

// UpdateProductHandler handles product updates
type UpdateProductHandler struct {
	repo domain.ProductRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	u := cmd.Update
	if u.Name != nil && *u.Name == "" {
		return nil, apperrors.Invalid("product name cannot be empty")
	}
	if u.Price != nil && *u.Price <= 0 {
		return nil, apperrors.Invalid("price must be greater than zero")
	}
	if u.DiscountPercentage != nil && (*u.DiscountPercentage < 0 || *u.DiscountPercentage > 100) {
		return nil, apperrors.Invalid("discount_percentage must be between 0 and 100")
	}
	if u.InventoryQuantity != nil && *u.InventoryQuantity < 0 {
		return nil, apperrors.Invalid("inventory_quantity cannot be negative")
	}

	product, err := h.repo.Update(ctx, cmd.ID, u)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}
