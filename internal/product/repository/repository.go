package repository

import (
	"context"
	"encoding/json"

	"github.com/storekit/admin-backend/internal/apperrors"
	"github.com/storekit/admin-backend/internal/derive"
	"github.com/storekit/admin-backend/internal/pagination"
	"github.com/storekit/admin-backend/internal/product/domain"
	"github.com/storekit/admin-backend/internal/storage"
)

const className = "Product"

// ProductRepository maps products onto the store's flat property schema.
// The open attributes map is persisted as one JSON string property
// (attributes_json) so the schema stays flat.
type ProductRepository struct {
	col storage.Collection
}

// NewProductRepository creates a repository over the given store handle.
func NewProductRepository(store storage.Store) *ProductRepository {
	return &ProductRepository{col: store.Collection(className)}
}

// Create inserts a new product, deriving the slug from the name when the
// caller supplies none.
func (r *ProductRepository) Create(ctx context.Context, input domain.ProductCreate) (*domain.Product, error) {
	slug := input.Slug
	if slug == "" {
		slug = derive.Slug(input.Name)
	}

	attrs := input.Attributes
	if attrs == nil {
		attrs = map[string]interface{}{}
	}
	attrsJSON, err := json.Marshal(attrs)
	if err != nil {
		return nil, apperrors.Database("encode product attributes", err)
	}

	now := derive.Timestamp()
	props := storage.Properties{
		"name":                input.Name,
		"description":         input.Description,
		"price":               input.Price,
		"compare_at_price":    input.CompareAtPrice,
		"cost":                input.Cost,
		"category_id":         input.CategoryID,
		"section_id":          input.SectionID,
		"sku":                 input.SKU,
		"inventory_quantity":  input.InventoryQuantity,
		"image_url":           input.ImageURL,
		"is_active":           input.IsActive,
		"featured":            input.Featured,
		"discount_percentage": input.DiscountPercentage,
		"attributes_json":     string(attrsJSON),
		"slug":                slug,
		"created_at":          now,
		"updated_at":          now,
	}

	id, err := r.col.Insert(ctx, props)
	if err != nil {
		return nil, apperrors.Database("create product", err)
	}
	return decodeProduct(storage.Object{ID: id, Properties: props})
}

// Get fetches a product by id.
func (r *ProductRepository) Get(ctx context.Context, id string) (*domain.Product, error) {
	obj, err := r.col.FetchByID(ctx, id)
	if err != nil {
		return nil, apperrors.Database("fetch product", err)
	}
	if obj == nil {
		return nil, apperrors.NotFoundID("Product", id)
	}
	return decodeProduct(*obj)
}

// List scans one page window, then filters in memory. Filtering happens
// after the window, so a filtered page can return fewer than page_size items
// even when more matches exist beyond the window.
func (r *ProductRepository) List(ctx context.Context, params pagination.Params, filters domain.ProductFilters) ([]domain.Product, int, error) {
	objects, err := r.col.Scan(ctx, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, apperrors.Database("list products", err)
	}

	products := make([]domain.Product, 0, len(objects))
	for _, obj := range objects {
		product, err := decodeProduct(obj)
		if err != nil {
			return nil, 0, err
		}
		if !filters.Match(*product) {
			continue
		}
		products = append(products, *product)
	}

	total := pagination.EstimateTotal(params, len(objects), len(products))
	return products, total, nil
}

// Update merges the supplied fields into the product. An update with no set
// fields returns the current record without touching updated_at. The slug
// is never rederived, only replaced when set explicitly.
func (r *ProductRepository) Update(ctx context.Context, id string, update domain.ProductUpdate) (*domain.Product, error) {
	existing, err := r.col.FetchByID(ctx, id)
	if err != nil {
		return nil, apperrors.Database("fetch product", err)
	}
	if existing == nil {
		return nil, apperrors.NotFoundID("Product", id)
	}

	if update.IsEmpty() {
		return decodeProduct(*existing)
	}

	partial := storage.Properties{}
	if update.Name != nil {
		partial["name"] = *update.Name
	}
	if update.Description != nil {
		partial["description"] = *update.Description
	}
	if update.Price != nil {
		partial["price"] = *update.Price
	}
	if update.CompareAtPrice != nil {
		partial["compare_at_price"] = *update.CompareAtPrice
	}
	if update.Cost != nil {
		partial["cost"] = *update.Cost
	}
	if update.CategoryID != nil {
		partial["category_id"] = *update.CategoryID
	}
	if update.SectionID != nil {
		partial["section_id"] = *update.SectionID
	}
	if update.SKU != nil {
		partial["sku"] = *update.SKU
	}
	if update.InventoryQuantity != nil {
		partial["inventory_quantity"] = *update.InventoryQuantity
	}
	if update.ImageURL != nil {
		partial["image_url"] = *update.ImageURL
	}
	if update.IsActive != nil {
		partial["is_active"] = *update.IsActive
	}
	if update.Featured != nil {
		partial["featured"] = *update.Featured
	}
	if update.DiscountPercentage != nil {
		partial["discount_percentage"] = *update.DiscountPercentage
	}
	if update.Attributes != nil {
		attrsJSON, err := json.Marshal(update.Attributes)
		if err != nil {
			return nil, apperrors.Database("encode product attributes", err)
		}
		partial["attributes_json"] = string(attrsJSON)
	}
	if update.Slug != nil {
		partial["slug"] = *update.Slug
	}
	partial["updated_at"] = derive.Timestamp()

	if err := r.col.Update(ctx, id, partial); err != nil {
		return nil, apperrors.Database("update product", err)
	}

	updated, err := r.col.FetchByID(ctx, id)
	if err != nil {
		return nil, apperrors.Database("fetch product", err)
	}
	if updated == nil {
		return nil, apperrors.NotFoundID("Product", id)
	}
	return decodeProduct(*updated)
}

// Delete removes the product. Hard delete.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	existing, err := r.col.FetchByID(ctx, id)
	if err != nil {
		return apperrors.Database("fetch product", err)
	}
	if existing == nil {
		return apperrors.NotFoundID("Product", id)
	}

	if err := r.col.Delete(ctx, id); err != nil {
		return apperrors.Database("delete product", err)
	}
	return nil
}

// Search runs a similarity search over the product collection and decodes
// the matches. Ranking belongs to the store; no further filtering happens
// here.
func (r *ProductRepository) Search(ctx context.Context, query string, limit int) ([]domain.Product, error) {
	objects, err := r.col.NearText(ctx, query, limit)
	if err != nil {
		return nil, apperrors.Database("search products", err)
	}

	products := make([]domain.Product, 0, len(objects))
	for _, obj := range objects {
		product, err := decodeProduct(obj)
		if err != nil {
			return nil, err
		}
		products = append(products, *product)
	}
	return products, nil
}

func decodeProduct(obj storage.Object) (*domain.Product, error) {
	p := obj.Properties

	attrs := map[string]interface{}{}
	if raw := p.String("attributes_json"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &attrs); err != nil {
			return nil, apperrors.Database("decode product",
				apperrors.CorruptRecord("product "+obj.ID+" has malformed attributes_json"))
		}
	}

	return &domain.Product{
		ID:                 obj.ID,
		Name:               p.String("name"),
		Description:        p.String("description"),
		Price:              p.Float("price"),
		CompareAtPrice:     p.Float("compare_at_price"),
		Cost:               p.Float("cost"),
		CategoryID:         p.String("category_id"),
		SectionID:          p.String("section_id"),
		SKU:                p.String("sku"),
		InventoryQuantity:  p.Int("inventory_quantity"),
		ImageURL:           p.String("image_url"),
		IsActive:           p.Bool("is_active"),
		Featured:           p.Bool("featured"),
		DiscountPercentage: p.Float("discount_percentage"),
		Attributes:         attrs,
		Slug:               p.String("slug"),
		CreatedAt:          p.String("created_at"),
		UpdatedAt:          p.String("updated_at"),
	}, nil
}
