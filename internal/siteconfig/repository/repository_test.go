package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storekit/admin-backend/internal/apperrors"
	"github.com/storekit/admin-backend/internal/siteconfig/domain"
	"github.com/storekit/admin-backend/internal/storage"
	"github.com/storekit/admin-backend/internal/storage/memory"
)

func newTestRepo() *SiteConfigRepository {
	return NewSiteConfigRepository(memory.New())
}

func TestGetConfigEmptyIsNotFound(t *testing.T) {
	repo := newTestRepo()

	_, err := repo.Get(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateConfigSingleton(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.SiteConfigCreate{
		CompanyName:  "Acme Store",
		PrimaryColor: "#1a73e8",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Store", created.CompanyName)
	assert.NotEmpty(t, created.CreatedAt)

	_, err = repo.Create(ctx, domain.SiteConfigCreate{CompanyName: "Second Store"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	fetched, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Acme Store", fetched.CompanyName)
}

func TestUpdateConfigPartial(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	_, err := repo.Create(ctx, domain.SiteConfigCreate{
		CompanyName:  "Acme Store",
		ContactEmail: "info@acme.test",
	})
	require.NoError(t, err)

	tagline := "Everything you need"
	updated, err := repo.Update(ctx, domain.SiteConfigUpdate{Tagline: &tagline})
	require.NoError(t, err)
	assert.Equal(t, "Everything you need", updated.Tagline)
	assert.Equal(t, "Acme Store", updated.CompanyName)
	assert.Equal(t, "info@acme.test", updated.ContactEmail)
}

func TestUpdateConfigEmptyIsNoOp(t *testing.T) {
	store := memory.New()
	repo := NewSiteConfigRepository(store)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.SiteConfigCreate{CompanyName: "Acme Store"})
	require.NoError(t, err)

	// Backdate the stored timestamp so a wrongful re-stamp shows up even when
	// the update runs within the same clock second as the create.
	backdated := "2023-01-02T03:04:05Z"
	require.NoError(t, store.Collection(className).Update(ctx, created.ID, storage.Properties{"updated_at": backdated}))

	updated, err := repo.Update(ctx, domain.SiteConfigUpdate{})
	require.NoError(t, err)
	assert.Equal(t, backdated, updated.UpdatedAt)

	fetched, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, backdated, fetched.UpdatedAt)
}

func TestUpdateConfigWithoutRecordIsNotFound(t *testing.T) {
	repo := newTestRepo()

	tagline := "nothing here"
	_, err := repo.Update(context.Background(), domain.SiteConfigUpdate{Tagline: &tagline})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
