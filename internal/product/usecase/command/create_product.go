package command

import (
	"context"
	"fmt"

	"github.com/storekit/admin-backend/internal/apperrors"
	"github.com/storekit/admin-backend/internal/product/domain"
)

// CreateProductCommand represents the command to create a new product
type CreateProductCommand struct {
	Product domain.ProductCreate
}

// CreateProductHandler handles product creation
type CreateProductHandler struct {
	repo domain.ProductRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	in := cmd.Product
	if in.Name == "" {
		return nil, apperrors.Invalid("product name is required")
	}
	if in.Price <= 0 {
		return nil, apperrors.Invalid("price must be greater than zero")
	}
	if in.DiscountPercentage < 0 || in.DiscountPercentage > 100 {
		return nil, apperrors.Invalid("discount_percentage must be between 0 and 100")
	}
	if in.InventoryQuantity < 0 {
		return nil, apperrors.Invalid("inventory_quantity cannot be negative")
	}

	product, err := h.repo.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}
