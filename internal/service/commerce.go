// Package service ties the catalog, size advisor, cart and order ledger
// together into the operation surface the conversational layer dispatches
// tool calls against.
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/vastra/commerce-core/internal/cart"
	"github.com/vastra/commerce-core/internal/catalog"
	"github.com/vastra/commerce-core/internal/domain"
	"github.com/vastra/commerce-core/internal/orders"
	"github.com/vastra/commerce-core/internal/sizing"
)

// LineItem is one (product, quantity) pair of an order request.
type LineItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Commerce serves one conversation: the catalog and size advisor are shared
// read-only, the cart and ledger belong to this instance alone.
type Commerce struct {
	store  catalog.Store
	sizes  *sizing.Advisor
	cart   *cart.Cart
	ledger *orders.Ledger
	log    *zap.Logger
}

func New(store catalog.Store, sizes *sizing.Advisor, c *cart.Cart, l *orders.Ledger, logger *zap.Logger) *Commerce {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Commerce{
		store:  store,
		sizes:  sizes,
		cart:   c,
		ledger: l,
		log:    logger,
	}
}

// ListProducts returns catalog entries matching the filter in catalog order.
func (s *Commerce) ListProducts(ctx context.Context, f catalog.Filter) ([]domain.Product, error) {
	return s.store.List(ctx, f)
}

// GetProduct looks a single product up by id.
func (s *Commerce) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	return s.store.GetByID(ctx, id)
}

// AddToCart resolves the product and adds quantity units to the cart.
func (s *Commerce) AddToCart(ctx context.Context, productID string, quantity int) (domain.CartSummary, cart.Status, error) {
	p, err := s.store.GetByID(ctx, productID)
	if err != nil {
		return s.cart.Summary(), cart.StatusNotFound, fmt.Errorf("add to cart %q: %w", productID, err)
	}

	summary, status, err := s.cart.Add(p, quantity)
	if err != nil {
		return summary, status, err
	}

	s.log.Info("cart item added",
		zap.String("product_id", productID),
		zap.Int("quantity", quantity),
		zap.String("status", string(status)),
		zap.Int64("cart_total", summary.Total))
	return summary, status, nil
}

func (s *Commerce) RemoveFromCart(productID string) (domain.CartSummary, cart.Status) {
	return s.cart.Remove(productID)
}

func (s *Commerce) UpdateQuantity(productID string, quantity int) (domain.CartSummary, cart.Status) {
	return s.cart.UpdateQuantity(productID, quantity)
}

func (s *Commerce) ViewCart() domain.CartSummary {
	return s.cart.Summary()
}

func (s *Commerce) ClearCart() domain.CartSummary {
	return s.cart.Clear()
}

// CreateOrder resolves every line item against the catalog and appends an
// immutable order to the ledger. Any unresolvable product fails the whole
// call before anything is recorded; there is no partial order.
func (s *Commerce) CreateOrder(ctx context.Context, items []LineItem) (domain.Order, error) {
	lines := make([]domain.OrderLineItem, 0, len(items))
	for _, li := range items {
		quantity := li.Quantity
		if quantity == 0 {
			quantity = 1
		}
		if quantity < 0 {
			return domain.Order{}, fmt.Errorf("order line %q: %w", li.ProductID, cart.ErrInvalidQuantity)
		}

		p, err := s.store.GetByID(ctx, li.ProductID)
		if err != nil {
			return domain.Order{}, fmt.Errorf("order line %q: %w", li.ProductID, err)
		}

		lines = append(lines, domain.OrderLineItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    quantity,
			UnitPrice:   p.Price,
			ItemTotal:   p.Price * int64(quantity),
		})
	}

	order := s.ledger.Append(lines, domain.CurrencyINR)
	s.log.Info("order recorded",
		zap.String("order_id", order.ID),
		zap.Int("lines", len(order.Items)),
		zap.Int64("total", order.Total))
	return order, nil
}

// Checkout converts the current cart into an order. The cart is cleared
// only after the order is safely in the ledger; if order creation fails the
// cart is left untouched and the error propagates.
func (s *Commerce) Checkout(ctx context.Context) (domain.Order, error) {
	summary := s.cart.Summary()
	if summary.ItemCount == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	items := make([]LineItem, 0, len(summary.Items))
	for _, ci := range summary.Items {
		items = append(items, LineItem{ProductID: ci.ProductID, Quantity: ci.Quantity})
	}

	order, err := s.CreateOrder(ctx, items)
	if err != nil {
		s.log.Warn("checkout failed, cart preserved", zap.Error(err))
		return domain.Order{}, fmt.Errorf("checkout: %w", err)
	}

	s.cart.Clear()
	return order, nil
}

func (s *Commerce) LastOrder() (domain.Order, error) {
	return s.ledger.Last()
}

func (s *Commerce) Orders() []domain.Order {
	return s.ledger.All()
}

// RecommendSize maps (category, height in cm) to a size.
func (s *Commerce) RecommendSize(category string, heightCM int) (domain.SizeRecommendation, error) {
	return s.sizes.Recommend(category, heightCM)
}

// SizeChart returns the full ordered table for a category.
func (s *Commerce) SizeChart(category string) (domain.SizeChart, error) {
	return s.sizes.Chart(category)
}
