package domain

import (
	"context"

	"github.com/storekit/admin-backend/internal/pagination"
)

// Section is a display grouping on the storefront. Sections nest through
// ParentSectionID with no enforced depth limit.
type Section struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	Order           int    `json:"order"`
	IsActive        bool   `json:"is_active"`
	ParentSectionID string `json:"parent_section_id,omitempty"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// SectionCreate carries the caller-validated fields for creation.
type SectionCreate struct {
	Name            string
	Description     string
	Order           int
	IsActive        bool
	ParentSectionID string
}

// SectionUpdate is a partial update; nil fields are left unchanged.
type SectionUpdate struct {
	Name            *string
	Description     *string
	Order           *int
	IsActive        *bool
	ParentSectionID *string
}

// IsEmpty reports whether the update carries no set fields.
func (u SectionUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Order == nil &&
		u.IsActive == nil && u.ParentSectionID == nil
}

// SectionFilters are the listing predicates, applied in memory after the
// scan window (exact equality only).
type SectionFilters struct {
	ParentSectionID *string
}

// Match reports whether the section satisfies every supplied predicate.
func (f SectionFilters) Match(s Section) bool {
	if f.ParentSectionID != nil && s.ParentSectionID != *f.ParentSectionID {
		return false
	}
	return true
}

// SectionRepository defines the contract for section data access
type SectionRepository interface {
	Create(ctx context.Context, input SectionCreate) (*Section, error)
	Get(ctx context.Context, id string) (*Section, error)
	List(ctx context.Context, params pagination.Params, filters SectionFilters) ([]Section, int, error)
	Update(ctx context.Context, id string, update SectionUpdate) (*Section, error)
	Delete(ctx context.Context, id string) error
}
