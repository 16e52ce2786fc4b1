package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storekit/admin-backend/internal/apperrors"
	"github.com/storekit/admin-backend/internal/pagination"
	"github.com/storekit/admin-backend/internal/section/domain"
	"github.com/storekit/admin-backend/internal/storage"
	"github.com/storekit/admin-backend/internal/storage/memory"
)

func newTestRepo() *SectionRepository {
	return NewSectionRepository(memory.New())
}

func TestSectionCreateAndGet(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.SectionCreate{
		Name:        "Electronics",
		Description: "Gadgets and devices",
		Order:       1,
		IsActive:    true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Electronics", created.Name)
	assert.NotEmpty(t, created.CreatedAt)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	fetched, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestSectionGetNotFound(t *testing.T) {
	repo := newTestRepo()

	_, err := repo.Get(context.Background(), "missing-id")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Contains(t, err.Error(), "missing-id")
}

func TestSectionUpdatePartial(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.SectionCreate{Name: "Home", Order: 2, IsActive: true})
	require.NoError(t, err)

	name := "Home & Living"
	updated, err := repo.Update(ctx, created.ID, domain.SectionUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Home & Living", updated.Name)
	assert.Equal(t, 2, updated.Order)
	assert.True(t, updated.IsActive)
}

func TestSectionUpdateEmptyIsNoOp(t *testing.T) {
	store := memory.New()
	repo := NewSectionRepository(store)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.SectionCreate{Name: "Sale", IsActive: true})
	require.NoError(t, err)

	// Backdate the stored timestamp so a wrongful re-stamp shows up even when
	// the update runs within the same clock second as the create.
	backdated := "2023-01-02T03:04:05Z"
	require.NoError(t, store.Collection(className).Update(ctx, created.ID, storage.Properties{"updated_at": backdated}))

	updated, err := repo.Update(ctx, created.ID, domain.SectionUpdate{})
	require.NoError(t, err)
	assert.Equal(t, backdated, updated.UpdatedAt)

	fetched, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, backdated, fetched.UpdatedAt)
}

func TestSectionUpdateNotFound(t *testing.T) {
	repo := newTestRepo()

	name := "anything"
	_, err := repo.Update(context.Background(), "missing-id", domain.SectionUpdate{Name: &name})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSectionDelete(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.SectionCreate{Name: "Clearance", IsActive: true})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.Get(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = repo.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSectionListPagination(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := repo.Create(ctx, domain.SectionCreate{Name: fmt.Sprintf("Section %d", i), Order: i, IsActive: true})
		require.NoError(t, err)
	}

	sections, total, err := repo.List(ctx, pagination.Params{Page: 1, PageSize: 2}, domain.SectionFilters{})
	require.NoError(t, err)
	assert.Len(t, sections, 2)
	// Full raw page signals at least one more page beyond this one.
	assert.Equal(t, 3, total)

	sections, total, err = repo.List(ctx, pagination.Params{Page: 3, PageSize: 2}, domain.SectionFilters{})
	require.NoError(t, err)
	assert.Len(t, sections, 1)
	assert.Equal(t, 5, total)
}

func TestSectionListParentFilterAppliesAfterWindow(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	parent, err := repo.Create(ctx, domain.SectionCreate{Name: "Parent", IsActive: true})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, domain.SectionCreate{Name: fmt.Sprintf("Child %d", i), ParentSectionID: parent.ID, IsActive: true})
		require.NoError(t, err)
	}

	// Window of 2 covers the parent plus one child; only the child matches.
	sections, _, err := repo.List(ctx, pagination.Params{Page: 1, PageSize: 2}, domain.SectionFilters{ParentSectionID: &parent.ID})
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, parent.ID, sections[0].ParentSectionID)
}
