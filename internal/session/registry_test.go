package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vastra/commerce-core/internal/catalog"
	"github.com/vastra/commerce-core/internal/sizing"
)

func setupRegistry(t *testing.T) *Registry {
	store := catalog.NewMemoryStore(catalog.Seed()...)
	t.Cleanup(func() { store.Close() })
	return NewRegistry(store, sizing.NewAdvisor(), nil)
}

func TestRegistry_Get_CreatesOnFirstUse(t *testing.T) {
	reg := setupRegistry(t)

	id := reg.NewID()
	assert.Equal(t, 0, reg.Len())

	first := reg.Get(id)
	require.NotNil(t, first)
	assert.Equal(t, 1, reg.Len())

	// Same id resolves to the same commerce context
	assert.Same(t, first, reg.Get(id))
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_SessionsAreIsolated(t *testing.T) {
	reg := setupRegistry(t)

	alice := reg.Get(reg.NewID())
	bob := reg.Get(reg.NewID())

	_, _, err := alice.AddToCart(context.Background(), "shoes-001", 2)
	require.NoError(t, err)

	assert.Equal(t, 1, alice.ViewCart().ItemCount)
	assert.Equal(t, 0, bob.ViewCart().ItemCount)

	_, err = alice.Checkout(context.Background())
	require.NoError(t, err)

	assert.Len(t, alice.Orders(), 1)
	assert.Empty(t, bob.Orders())
}

func TestRegistry_NewID_Unique(t *testing.T) {
	reg := setupRegistry(t)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := reg.NewID()
		assert.False(t, seen[id])
		seen[id] = true
	}
}
