package domain

import (
	"context"

	"github.com/storekit/admin-backend/internal/pagination"
)

// Category groups products inside a section. Categories nest through
// ParentCategoryID, and each belongs to exactly one section.
type Category struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	SectionID        string `json:"section_id"`
	ParentCategoryID string `json:"parent_category_id,omitempty"`
	IsActive         bool   `json:"is_active"`
	Order            int    `json:"order"`
	Slug             string `json:"slug"`
	ImageURL         string `json:"image_url,omitempty"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

// CategoryCreate carries the caller-validated fields for creation. An empty
// Slug is derived from Name at insert time.
type CategoryCreate struct {
	Name             string
	Description      string
	SectionID        string
	ParentCategoryID string
	IsActive         bool
	Order            int
	Slug             string
	ImageURL         string
}

// CategoryUpdate is a partial update; nil fields are left unchanged. The
// slug is never rederived, only replaced when set explicitly.
type CategoryUpdate struct {
	Name             *string
	Description      *string
	SectionID        *string
	ParentCategoryID *string
	IsActive         *bool
	Order            *int
	Slug             *string
	ImageURL         *string
}

// IsEmpty reports whether the update carries no set fields.
func (u CategoryUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.SectionID == nil &&
		u.ParentCategoryID == nil && u.IsActive == nil && u.Order == nil &&
		u.Slug == nil && u.ImageURL == nil
}

// CategoryFilters are the listing predicates, applied in memory after the
// scan window.
type CategoryFilters struct {
	ParentCategoryID *string
}

// Match reports whether the category satisfies every supplied predicate.
func (f CategoryFilters) Match(c Category) bool {
	if f.ParentCategoryID != nil && c.ParentCategoryID != *f.ParentCategoryID {
		return false
	}
	return true
}

// CategoryRepository defines the contract for category data access
type CategoryRepository interface {
	Create(ctx context.Context, input CategoryCreate) (*Category, error)
	Get(ctx context.Context, id string) (*Category, error)
	List(ctx context.Context, params pagination.Params, filters CategoryFilters) ([]Category, int, error)
	Update(ctx context.Context, id string, update CategoryUpdate) (*Category, error)
	Delete(ctx context.Context, id string) error
}
