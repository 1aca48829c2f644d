package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vastra/commerce-core/internal/cart"
	"github.com/vastra/commerce-core/internal/catalog"
	"github.com/vastra/commerce-core/internal/domain"
	"github.com/vastra/commerce-core/internal/orders"
	"github.com/vastra/commerce-core/internal/sizing"
)

func setupCommerce(t *testing.T) *Commerce {
	store := catalog.NewMemoryStore(catalog.Seed()...)
	t.Cleanup(func() { store.Close() })
	return New(store, sizing.NewAdvisor(), cart.New(domain.CurrencyINR), orders.NewLedger(), nil)
}

// flakyStore wraps a real catalog and lets a test yank products away
// between cart add and checkout.
type flakyStore struct {
	catalog.Store
	vanished map[string]bool
}

func (f *flakyStore) GetByID(ctx context.Context, id string) (domain.Product, error) {
	if f.vanished[id] {
		return domain.Product{}, catalog.ErrProductNotFound
	}
	return f.Store.GetByID(ctx, id)
}

func TestCommerce_AddToCart_UnknownProduct(t *testing.T) {
	s := setupCommerce(t)

	_, status, err := s.AddToCart(context.Background(), "bogus", 1)

	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
	assert.Equal(t, cart.StatusNotFound, status)
	assert.Equal(t, 0, s.ViewCart().ItemCount)
}

func TestCommerce_AddToCart_SnapshotsNameAndPrice(t *testing.T) {
	s := setupCommerce(t)

	summary, status, err := s.AddToCart(context.Background(), "shoes-001", 2)
	require.NoError(t, err)

	assert.Equal(t, cart.StatusAdded, status)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, "White Sneakers", summary.Items[0].ProductName)
	assert.Equal(t, int64(1299), summary.Items[0].UnitPrice)
	assert.Equal(t, int64(2598), summary.Total)
	assert.Equal(t, 1, summary.ItemCount)
}

func TestCommerce_CreateOrder(t *testing.T) {
	s := setupCommerce(t)

	order, err := s.CreateOrder(context.Background(), []LineItem{
		{ProductID: "tshirt-001", Quantity: 2},
		{ProductID: "acc-002"}, // quantity defaults to 1
	})
	require.NoError(t, err)

	require.Len(t, order.Items, 2)
	assert.Equal(t, int64(998), order.Items[0].ItemTotal)
	assert.Equal(t, 1, order.Items[1].Quantity)
	assert.Equal(t, int64(1797), order.Total)
	assert.Equal(t, domain.OrderStatusConfirmed, order.Status)
	assert.Regexp(t, `^ORD-\d{8}-0001$`, order.ID)
}

func TestCommerce_CreateOrder_UnknownProductLeavesLedgerUntouched(t *testing.T) {
	s := setupCommerce(t)

	_, err := s.CreateOrder(context.Background(), []LineItem{
		{ProductID: "tshirt-001", Quantity: 1},
		{ProductID: "bogus", Quantity: 1},
	})

	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
	assert.Empty(t, s.Orders())
}

func TestCommerce_CreateOrder_NegativeQuantity(t *testing.T) {
	s := setupCommerce(t)

	_, err := s.CreateOrder(context.Background(), []LineItem{
		{ProductID: "tshirt-001", Quantity: -2},
	})

	assert.ErrorIs(t, err, cart.ErrInvalidQuantity)
	assert.Empty(t, s.Orders())
}

func TestCommerce_Checkout(t *testing.T) {
	s := setupCommerce(t)

	_, _, err := s.AddToCart(context.Background(), "shoes-001", 2)
	require.NoError(t, err)
	cartTotal := s.ViewCart().Total

	order, err := s.Checkout(context.Background())
	require.NoError(t, err)

	assert.Equal(t, cartTotal, order.Total)
	require.Len(t, order.Items, 1)
	assert.Equal(t, int64(2598), order.Total)
	assert.Equal(t, 0, s.ViewCart().ItemCount)

	last, err := s.LastOrder()
	require.NoError(t, err)
	assert.Equal(t, order.ID, last.ID)
}

func TestCommerce_Checkout_EmptyCart(t *testing.T) {
	s := setupCommerce(t)

	_, err := s.Checkout(context.Background())

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, s.Orders())
}

func TestCommerce_Checkout_FailurePreservesCart(t *testing.T) {
	inner := catalog.NewMemoryStore(catalog.Seed()...)
	t.Cleanup(func() { inner.Close() })
	store := &flakyStore{Store: inner, vanished: map[string]bool{}}
	s := New(store, sizing.NewAdvisor(), cart.New(domain.CurrencyINR), orders.NewLedger(), nil)

	_, _, err := s.AddToCart(context.Background(), "shoes-001", 2)
	require.NoError(t, err)
	store.vanished["shoes-001"] = true

	_, err = s.Checkout(context.Background())

	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
	// Atomicity contract: failed checkout records nothing and clears nothing
	assert.Empty(t, s.Orders())
	summary := s.ViewCart()
	assert.Equal(t, 1, summary.ItemCount)
	assert.Equal(t, int64(2598), summary.Total)
}

func TestCommerce_Checkout_SequencesAcrossOrders(t *testing.T) {
	s := setupCommerce(t)

	for i := 0; i < 2; i++ {
		_, _, err := s.AddToCart(context.Background(), "acc-001", 1)
		require.NoError(t, err)
		_, err = s.Checkout(context.Background())
		require.NoError(t, err)
	}

	all := s.Orders()
	require.Len(t, all, 2)
	assert.NotEqual(t, all[0].ID, all[1].ID)
}
