package domain

import (
	"context"

	"github.com/storekit/admin-backend/internal/pagination"
)

// Product is a sellable item. Attributes is an open key-value map of
// arbitrary structured data, persisted as a single JSON string property.
type Product struct {
	ID                 string                 `json:"id"`
	Name               string                 `json:"name"`
	Description        string                 `json:"description,omitempty"`
	Price              float64                `json:"price"`
	CompareAtPrice     float64                `json:"compare_at_price,omitempty"`
	Cost               float64                `json:"cost,omitempty"`
	CategoryID         string                 `json:"category_id,omitempty"`
	SectionID          string                 `json:"section_id,omitempty"`
	SKU                string                 `json:"sku,omitempty"`
	InventoryQuantity  int                    `json:"inventory_quantity"`
	ImageURL           string                 `json:"image_url,omitempty"`
	IsActive           bool                   `json:"is_active"`
	Featured           bool                   `json:"featured"`
	DiscountPercentage float64                `json:"discount_percentage"`
	Attributes         map[string]interface{} `json:"attributes"`
	Slug               string                 `json:"slug"`
	CreatedAt          string                 `json:"created_at"`
	UpdatedAt          string                 `json:"updated_at"`
}

// ProductCreate carries the caller-validated fields for creation. An empty
// Slug is derived from Name at insert time.
type ProductCreate struct {
	Name               string
	Description        string
	Price              float64
	CompareAtPrice     float64
	Cost               float64
	CategoryID         string
	SectionID          string
	SKU                string
	InventoryQuantity  int
	ImageURL           string
	IsActive           bool
	Featured           bool
	DiscountPercentage float64
	Attributes         map[string]interface{}
	Slug               string
}

// ProductUpdate is a partial update; nil fields are left unchanged.
type ProductUpdate struct {
	Name               *string
	Description        *string
	Price              *float64
	CompareAtPrice     *float64
	Cost               *float64
	CategoryID         *string
	SectionID          *string
	SKU                *string
	InventoryQuantity  *int
	ImageURL           *string
	IsActive           *bool
	Featured           *bool
	DiscountPercentage *float64
	Attributes         map[string]interface{}
	Slug               *string
}

// IsEmpty reports whether the update carries no set fields.
func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil &&
		u.CompareAtPrice == nil && u.Cost == nil && u.CategoryID == nil &&
		u.SectionID == nil && u.SKU == nil && u.InventoryQuantity == nil &&
		u.ImageURL == nil && u.IsActive == nil && u.Featured == nil &&
		u.DiscountPercentage == nil && u.Attributes == nil && u.Slug == nil
}

// ProductFilters are the listing predicates, applied in memory after the
// scan window (exact equality only).
type ProductFilters struct {
	CategoryID *string
	SectionID  *string
	IsActive   *bool
	Featured   *bool
}

// Match reports whether the product satisfies every supplied predicate.
func (f ProductFilters) Match(p Product) bool {
	if f.CategoryID != nil && p.CategoryID != *f.CategoryID {
		return false
	}
	if f.SectionID != nil && p.SectionID != *f.SectionID {
		return false
	}
	if f.IsActive != nil && p.IsActive != *f.IsActive {
		return false
	}
	if f.Featured != nil && p.Featured != *f.Featured {
		return false
	}
	return true
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(ctx context.Context, input ProductCreate) (*Product, error)
	Get(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, params pagination.Params, filters ProductFilters) ([]Product, int, error)
	Update(ctx context.Context, id string, update ProductUpdate) (*Product, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string, limit int) ([]Product, error)
}
