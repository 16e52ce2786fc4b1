package repository

import (
	"context"

	"github.com/storekit/admin-backend/internal/apperrors"
	"github.com/storekit/admin-backend/internal/category/domain"
	"github.com/storekit/admin-backend/internal/derive"
	"github.com/storekit/admin-backend/internal/pagination"
	"github.com/storekit/admin-backend/internal/storage"
)

const className = "Category"

// CategoryRepository maps categories onto the store's flat property schema.
type CategoryRepository struct {
	col storage.Collection
}

// NewCategoryRepository creates a repository over the given store handle.
func NewCategoryRepository(store storage.Store) *CategoryRepository {
	return &CategoryRepository{col: store.Collection(className)}
}

// Create inserts a new category, deriving the slug from the name when the
// caller supplies none.
func (r *CategoryRepository) Create(ctx context.Context, input domain.CategoryCreate) (*domain.Category, error) {
	slug := input.Slug
	if slug == "" {
		slug = derive.Slug(input.Name)
	}

	now := derive.Timestamp()
	props := storage.Properties{
		"name":               input.Name,
		"description":        input.Description,
		"section_id":         input.SectionID,
		"parent_category_id": input.ParentCategoryID,
		"is_active":          input.IsActive,
		"order":              input.Order,
		"slug":               slug,
		"image_url":          input.ImageURL,
		"created_at":         now,
		"updated_at":         now,
	}

	id, err := r.col.Insert(ctx, props)
	if err != nil {
		return nil, apperrors.Database("create category", err)
	}
	return decodeCategory(storage.Object{ID: id, Properties: props}), nil
}

// Get fetches a category by id.
func (r *CategoryRepository) Get(ctx context.Context, id string) (*domain.Category, error) {
	obj, err := r.col.FetchByID(ctx, id)
	if err != nil {
		return nil, apperrors.Database("fetch category", err)
	}
	if obj == nil {
		return nil, apperrors.NotFoundID("Category", id)
	}
	return decodeCategory(*obj), nil
}

// List scans one page window, then filters in memory.
func (r *CategoryRepository) List(ctx context.Context, params pagination.Params, filters domain.CategoryFilters) ([]domain.Category, int, error) {
	objects, err := r.col.Scan(ctx, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, apperrors.Database("list categories", err)
	}

	categories := make([]domain.Category, 0, len(objects))
	for _, obj := range objects {
		category := decodeCategory(obj)
		if !filters.Match(*category) {
			continue
		}
		categories = append(categories, *category)
	}

	total := pagination.EstimateTotal(params, len(objects), len(categories))
	return categories, total, nil
}

// Update merges the supplied fields into the category. An update with no
// set fields returns the current record without touching updated_at. The
// slug only changes when set in the update, never by rederivation.
func (r *CategoryRepository) Update(ctx context.Context, id string, update domain.CategoryUpdate) (*domain.Category, error) {
	existing, err := r.col.FetchByID(ctx, id)
	if err != nil {
		return nil, apperrors.Database("fetch category", err)
	}
	if existing == nil {
		return nil, apperrors.NotFoundID("Category", id)
	}

	if update.IsEmpty() {
		return decodeCategory(*existing), nil
	}

	partial := storage.Properties{}
	if update.Name != nil {
		partial["name"] = *update.Name
	}
	if update.Description != nil {
		partial["description"] = *update.Description
	}
	if update.SectionID != nil {
		partial["section_id"] = *update.SectionID
	}
	if update.ParentCategoryID != nil {
		partial["parent_category_id"] = *update.ParentCategoryID
	}
	if update.IsActive != nil {
		partial["is_active"] = *update.IsActive
	}
	if update.Order != nil {
		partial["order"] = *update.Order
	}
	if update.Slug != nil {
		partial["slug"] = *update.Slug
	}
	if update.ImageURL != nil {
		partial["image_url"] = *update.ImageURL
	}
	partial["updated_at"] = derive.Timestamp()

	if err := r.col.Update(ctx, id, partial); err != nil {
		return nil, apperrors.Database("update category", err)
	}

	updated, err := r.col.FetchByID(ctx, id)
	if err != nil {
		return nil, apperrors.Database("fetch category", err)
	}
	if updated == nil {
		return nil, apperrors.NotFoundID("Category", id)
	}
	return decodeCategory(*updated), nil
}

// Delete removes the category. Hard delete.
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	existing, err := r.col.FetchByID(ctx, id)
	if err != nil {
		return apperrors.Database("fetch category", err)
	}
	if existing == nil {
		return apperrors.NotFoundID("Category", id)
	}

	if err := r.col.Delete(ctx, id); err != nil {
		return apperrors.Database("delete category", err)
	}
	return nil
}

func decodeCategory(obj storage.Object) *domain.Category {
	p := obj.Properties
	return &domain.Category{
		ID:               obj.ID,
		Name:             p.String("name"),
		Description:      p.String("description"),
		SectionID:        p.String("section_id"),
		ParentCategoryID: p.String("parent_category_id"),
		IsActive:         p.Bool("is_active"),
		Order:            p.Int("order"),
		Slug:             p.String("slug"),
		ImageURL:         p.String("image_url"),
		CreatedAt:        p.String("created_at"),
		UpdatedAt:        p.String("updated_at"),
	}
}
