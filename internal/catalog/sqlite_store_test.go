package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSQLiteStore(t *testing.T) *SQLiteStore {
	store, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_SeedsStandardCatalog(t *testing.T) {
	store := setupSQLiteStore(t)

	products, err := store.List(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Equal(t, Seed(), products)
}

func TestSQLiteStore_List_MatchesMemoryStore(t *testing.T) {
	sqliteStore := setupSQLiteStore(t)
	memStore := setupMemoryStore(t)

	filters := []Filter{
		{Category: "Shoes"},
		{Color: "BLACK"},
		{Category: "accessories", MaxPrice: int64p(1000)},
		{MinPrice: int64p(2000)},
		{Category: "tshirt", Color: "blue", MinPrice: int64p(500), MaxPrice: int64p(600)},
	}

	for _, f := range filters {
		fromSQL, err := sqliteStore.List(context.Background(), f)
		require.NoError(t, err)
		fromMem, err := memStore.List(context.Background(), f)
		require.NoError(t, err)
		assert.Equal(t, fromMem, fromSQL)
	}
}

func TestSQLiteStore_GetByID(t *testing.T) {
	store := setupSQLiteStore(t)

	p, err := store.GetByID(context.Background(), "shoes-001")
	require.NoError(t, err)
	assert.Equal(t, "White Sneakers", p.Name)
	assert.Equal(t, int64(1299), p.Price)

	_, err = store.GetByID(context.Background(), "bogus")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestSQLiteStore_List_InvalidFilter(t *testing.T) {
	store := setupSQLiteStore(t)

	_, err := store.List(context.Background(), Filter{MaxPrice: int64p(-5)})
	assert.ErrorIs(t, err, ErrInvalidFilter)
}
