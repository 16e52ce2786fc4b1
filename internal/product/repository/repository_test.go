package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storekit/admin-backend/internal/apperrors"
	"github.com/storekit/admin-backend/internal/pagination"
	"github.com/storekit/admin-backend/internal/product/domain"
	"github.com/storekit/admin-backend/internal/storage"
	"github.com/storekit/admin-backend/internal/storage/memory"
)

func newTestStore() *memory.Store {
	return memory.New()
}

func TestProductAttributesRoundTrip(t *testing.T) {
	repo := NewProductRepository(newTestStore())
	ctx := context.Background()

	attrs := map[string]interface{}{
		"color":    "black",
		"weight":   "58g",
		"wireless": true,
	}
	created, err := repo.Create(ctx, domain.ProductCreate{
		Name:       "Wireless Earbuds",
		Price:      49.99,
		IsActive:   true,
		Attributes: attrs,
	})
	require.NoError(t, err)
	assert.Equal(t, "wireless-earbuds", created.Slug)

	fetched, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "black", fetched.Attributes["color"])
	assert.Equal(t, "58g", fetched.Attributes["weight"])
	assert.Equal(t, true, fetched.Attributes["wireless"])
}

func TestProductEmptyAttributesRoundTrip(t *testing.T) {
	repo := NewProductRepository(newTestStore())
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.ProductCreate{Name: "Plain", Price: 5, IsActive: true})
	require.NoError(t, err)

	fetched, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.NotNil(t, fetched.Attributes)
	assert.Empty(t, fetched.Attributes)
}

func TestProductCorruptAttributes(t *testing.T) {
	store := newTestStore()
	repo := NewProductRepository(store)
	ctx := context.Background()

	// Insert a record with broken JSON directly through the storage port.
	id, err := store.Collection("Product").Insert(ctx, storage.Properties{
		"name":            "Broken",
		"price":           1.0,
		"attributes_json": "{not json",
	})
	require.NoError(t, err)

	_, err = repo.Get(ctx, id)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrCorruptRecord)
}

func TestProductFilterAfterWindow(t *testing.T) {
	repo := NewProductRepository(newTestStore())
	ctx := context.Background()

	// 20 products in the first window, only 3 of them active.
	for i := 0; i < 20; i++ {
		_, err := repo.Create(ctx, domain.ProductCreate{
			Name:     fmt.Sprintf("Product %d", i),
			Price:    10,
			IsActive: i < 3,
		})
		require.NoError(t, err)
	}
	// Plenty of active products beyond the window; they must not count.
	for i := 0; i < 30; i++ {
		_, err := repo.Create(ctx, domain.ProductCreate{
			Name:     fmt.Sprintf("Later %d", i),
			Price:    10,
			IsActive: true,
		})
		require.NoError(t, err)
	}

	active := true
	products, total, err := repo.List(ctx, pagination.Params{Page: 1, PageSize: 20}, domain.ProductFilters{IsActive: &active})
	require.NoError(t, err)
	assert.Len(t, products, 3)
	// Full raw window: the estimate signals at least one more page.
	assert.Equal(t, 21, total)
}

func TestProductUpdatePartialKeepsAttributes(t *testing.T) {
	repo := NewProductRepository(newTestStore())
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.ProductCreate{
		Name:       "Keyboard",
		Price:      80,
		IsActive:   true,
		Attributes: map[string]interface{}{"layout": "ANSI"},
	})
	require.NoError(t, err)

	price := 75.0
	updated, err := repo.Update(ctx, created.ID, domain.ProductUpdate{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 75.0, updated.Price)
	assert.Equal(t, "ANSI", updated.Attributes["layout"])
	assert.Equal(t, "keyboard", updated.Slug)
}

func TestProductUpdateEmptyIsNoOp(t *testing.T) {
	store := newTestStore()
	repo := NewProductRepository(store)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.ProductCreate{Name: "Mouse", Price: 25, IsActive: true})
	require.NoError(t, err)

	// Backdate the stored timestamp so a wrongful re-stamp shows up even when
	// the update runs within the same clock second as the create.
	backdated := "2023-01-02T03:04:05Z"
	require.NoError(t, store.Collection(className).Update(ctx, created.ID, storage.Properties{"updated_at": backdated}))

	updated, err := repo.Update(ctx, created.ID, domain.ProductUpdate{})
	require.NoError(t, err)
	assert.Equal(t, backdated, updated.UpdatedAt)

	fetched, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, backdated, fetched.UpdatedAt)
}

func TestProductNotFound(t *testing.T) {
	repo := NewProductRepository(newTestStore())
	ctx := context.Background()

	_, err := repo.Get(ctx, "missing-id")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	name := "anything"
	_, err = repo.Update(ctx, "missing-id", domain.ProductUpdate{Name: &name})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = repo.Delete(ctx, "missing-id")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProductSearch(t *testing.T) {
	repo := NewProductRepository(newTestStore())
	ctx := context.Background()

	_, err := repo.Create(ctx, domain.ProductCreate{Name: "Trail Running Shoes", Price: 120, IsActive: true})
	require.NoError(t, err)
	_, err = repo.Create(ctx, domain.ProductCreate{Name: "Road Bike", Price: 900, IsActive: true})
	require.NoError(t, err)

	results, err := repo.Search(ctx, "running", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Trail Running Shoes", results[0].Name)
}
