package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storekit/admin-backend/internal/apperrors"
	"github.com/storekit/admin-backend/internal/category/domain"
	"github.com/storekit/admin-backend/internal/pagination"
	"github.com/storekit/admin-backend/internal/storage"
	"github.com/storekit/admin-backend/internal/storage/memory"
)

func newTestRepo() *CategoryRepository {
	return NewCategoryRepository(memory.New())
}

func TestCategoryCreateDerivesSlug(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.CategoryCreate{
		Name:      "Wireless Earbuds",
		SectionID: "sec-1",
		IsActive:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, "wireless-earbuds", created.Slug)

	explicit, err := repo.Create(ctx, domain.CategoryCreate{
		Name:      "Wireless Earbuds",
		SectionID: "sec-1",
		Slug:      "custom-slug",
		IsActive:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, "custom-slug", explicit.Slug)
}

func TestCategorySlugNotRederivedOnUpdate(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.CategoryCreate{Name: "Audio", SectionID: "sec-1", IsActive: true})
	require.NoError(t, err)
	require.Equal(t, "audio", created.Slug)

	name := "Audio & Video"
	updated, err := repo.Update(ctx, created.ID, domain.CategoryUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Audio & Video", updated.Name)
	assert.Equal(t, "audio", updated.Slug)
}

func TestCategoryGetNotFound(t *testing.T) {
	repo := newTestRepo()

	_, err := repo.Get(context.Background(), "missing-id")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCategoryUpdateEmptyIsNoOp(t *testing.T) {
	store := memory.New()
	repo := NewCategoryRepository(store)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.CategoryCreate{Name: "Audio", SectionID: "sec-1", IsActive: true})
	require.NoError(t, err)

	// Backdate the stored timestamp so a wrongful re-stamp shows up even when
	// the update runs within the same clock second as the create.
	backdated := "2023-01-02T03:04:05Z"
	require.NoError(t, store.Collection(className).Update(ctx, created.ID, storage.Properties{"updated_at": backdated}))

	updated, err := repo.Update(ctx, created.ID, domain.CategoryUpdate{})
	require.NoError(t, err)
	assert.Equal(t, backdated, updated.UpdatedAt)
	assert.Equal(t, created.Slug, updated.Slug)

	fetched, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, backdated, fetched.UpdatedAt)
}

func TestCategoryDeleteNotFound(t *testing.T) {
	repo := newTestRepo()

	err := repo.Delete(context.Background(), "missing-id")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCategoryListParentFilter(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	parent, err := repo.Create(ctx, domain.CategoryCreate{Name: "Root", SectionID: "sec-1", IsActive: true})
	require.NoError(t, err)
	child, err := repo.Create(ctx, domain.CategoryCreate{Name: "Leaf", SectionID: "sec-1", ParentCategoryID: parent.ID, IsActive: true})
	require.NoError(t, err)

	categories, _, err := repo.List(ctx, pagination.Params{Page: 1, PageSize: 20}, domain.CategoryFilters{ParentCategoryID: &parent.ID})
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, child.ID, categories[0].ID)
}
