package repository

import (
	"context"

	"github.com/storekit/admin-backend/internal/apperrors"
	"github.com/storekit/admin-backend/internal/derive"
	"github.com/storekit/admin-backend/internal/pagination"
	"github.com/storekit/admin-backend/internal/section/domain"
	"github.com/storekit/admin-backend/internal/storage"
)

const className = "Section"

// SectionRepository maps sections onto the store's flat property schema.
type SectionRepository struct {
	col storage.Collection
}

// NewSectionRepository creates a repository over the given store handle.
func NewSectionRepository(store storage.Store) *SectionRepository {
	return &SectionRepository{col: store.Collection(className)}
}

// Create inserts a new section and returns it with the store-assigned key.
func (r *SectionRepository) Create(ctx context.Context, input domain.SectionCreate) (*domain.Section, error) {
	now := derive.Timestamp()
	props := storage.Properties{
		"name":              input.Name,
		"description":       input.Description,
		"order":             input.Order,
		"is_active":         input.IsActive,
		"parent_section_id": input.ParentSectionID,
		"created_at":        now,
		"updated_at":        now,
	}

	id, err := r.col.Insert(ctx, props)
	if err != nil {
		return nil, apperrors.Database("create section", err)
	}
	return decodeSection(storage.Object{ID: id, Properties: props}), nil
}

// Get fetches a section by id.
func (r *SectionRepository) Get(ctx context.Context, id string) (*domain.Section, error) {
	obj, err := r.col.FetchByID(ctx, id)
	if err != nil {
		return nil, apperrors.Database("fetch section", err)
	}
	if obj == nil {
		return nil, apperrors.NotFoundID("Section", id)
	}
	return decodeSection(*obj), nil
}

// List scans one page window, then filters in memory. Filtering happens
// after the window, so a filtered page can return fewer than page_size items
// even when more matches exist beyond the window.
func (r *SectionRepository) List(ctx context.Context, params pagination.Params, filters domain.SectionFilters) ([]domain.Section, int, error) {
	objects, err := r.col.Scan(ctx, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, apperrors.Database("list sections", err)
	}

	sections := make([]domain.Section, 0, len(objects))
	for _, obj := range objects {
		section := decodeSection(obj)
		if !filters.Match(*section) {
			continue
		}
		sections = append(sections, *section)
	}

	total := pagination.EstimateTotal(params, len(objects), len(sections))
	return sections, total, nil
}

// Update merges the supplied fields into the section. An update with no set
// fields returns the current record without touching updated_at.
func (r *SectionRepository) Update(ctx context.Context, id string, update domain.SectionUpdate) (*domain.Section, error) {
	existing, err := r.col.FetchByID(ctx, id)
	if err != nil {
		return nil, apperrors.Database("fetch section", err)
	}
	if existing == nil {
		return nil, apperrors.NotFoundID("Section", id)
	}

	if update.IsEmpty() {
		return decodeSection(*existing), nil
	}

	partial := storage.Properties{}
	if update.Name != nil {
		partial["name"] = *update.Name
	}
	if update.Description != nil {
		partial["description"] = *update.Description
	}
	if update.Order != nil {
		partial["order"] = *update.Order
	}
	if update.IsActive != nil {
		partial["is_active"] = *update.IsActive
	}
	if update.ParentSectionID != nil {
		partial["parent_section_id"] = *update.ParentSectionID
	}
	partial["updated_at"] = derive.Timestamp()

	if err := r.col.Update(ctx, id, partial); err != nil {
		return nil, apperrors.Database("update section", err)
	}

	updated, err := r.col.FetchByID(ctx, id)
	if err != nil {
		return nil, apperrors.Database("fetch section", err)
	}
	if updated == nil {
		return nil, apperrors.NotFoundID("Section", id)
	}
	return decodeSection(*updated), nil
}

// Delete removes the section. Hard delete.
func (r *SectionRepository) Delete(ctx context.Context, id string) error {
	existing, err := r.col.FetchByID(ctx, id)
	if err != nil {
		return apperrors.Database("fetch section", err)
	}
	if existing == nil {
		return apperrors.NotFoundID("Section", id)
	}

	if err := r.col.Delete(ctx, id); err != nil {
		return apperrors.Database("delete section", err)
	}
	return nil
}

func decodeSection(obj storage.Object) *domain.Section {
	p := obj.Properties
	return &domain.Section{
		ID:              obj.ID,
		Name:            p.String("name"),
		Description:     p.String("description"),
		Order:           p.Int("order"),
		IsActive:        p.Bool("is_active"),
		ParentSectionID: p.String("parent_section_id"),
		CreatedAt:       p.String("created_at"),
		UpdatedAt:       p.String("updated_at"),
	}
}
