package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storekit/admin-backend/internal/storage"
)

func TestInsertAndFetch(t *testing.T) {
	store := New()
	col := store.Collection("Thing")
	ctx := context.Background()

	id, err := col.Insert(ctx, storage.Properties{"name": "one"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	obj, err := col.FetchByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, obj)
	assert.Equal(t, "one", obj.Properties.String("name"))

	missing, err := col.FetchByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestScanInsertionOrderAndWindow(t *testing.T) {
	store := New()
	col := store.Collection("Thing")
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := col.Insert(ctx, storage.Properties{"n": i})
		require.NoError(t, err)
	}

	objects, err := col.Scan(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, objects, 2)
	assert.Equal(t, 2, objects[0].Properties.Int("n"))
	assert.Equal(t, 3, objects[1].Properties.Int("n"))

	past, err := col.Scan(ctx, 10, 100)
	require.NoError(t, err)
	assert.Empty(t, past)
}

func TestUpdateMergesPartial(t *testing.T) {
	store := New()
	col := store.Collection("Thing")
	ctx := context.Background()

	id, err := col.Insert(ctx, storage.Properties{"a": "x", "b": "y"})
	require.NoError(t, err)

	require.NoError(t, col.Update(ctx, id, storage.Properties{"b": "z"}))

	obj, err := col.FetchByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "x", obj.Properties.String("a"))
	assert.Equal(t, "z", obj.Properties.String("b"))

	assert.ErrorIs(t, col.Update(ctx, "nope", storage.Properties{"a": "1"}), storage.ErrNotFound)
}

func TestDelete(t *testing.T) {
	store := New()
	col := store.Collection("Thing")
	ctx := context.Background()

	id, err := col.Insert(ctx, storage.Properties{"a": "x"})
	require.NoError(t, err)

	require.NoError(t, col.Delete(ctx, id))

	obj, err := col.FetchByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, obj)

	assert.ErrorIs(t, col.Delete(ctx, id), storage.ErrNotFound)
}

func TestNearTextSubstringMatch(t *testing.T) {
	store := New()
	col := store.Collection("Thing")
	ctx := context.Background()

	for i, name := range []string{"Trail Running Shoes", "Road Bike", "Running Socks"} {
		_, err := col.Insert(ctx, storage.Properties{"name": name, "n": i})
		require.NoError(t, err)
	}

	matches, err := col.NearText(ctx, "RUNNING", 10)
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	limited, err := col.NearText(ctx, "running", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestCollectionsAreIsolated(t *testing.T) {
	store := New()
	ctx := context.Background()

	a := store.Collection("A")
	b := store.Collection("B")

	id, err := a.Insert(ctx, storage.Properties{"name": "only-in-a"})
	require.NoError(t, err)

	obj, err := b.FetchByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, obj)

	// Same name returns the same backing collection.
	again := store.Collection("A")
	obj, err = again.FetchByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, obj)
	assert.Equal(t, "only-in-a", fmt.Sprint(obj.Properties["name"]))
}
