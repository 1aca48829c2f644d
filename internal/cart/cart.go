// Package cart holds the mutable shopping cart for one conversation.
package cart

import (
	"errors"
	"sync"

	"github.com/vastra/commerce-core/internal/domain"
)

var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// Status reports what a cart mutation actually did.
type Status string

const (
	StatusAdded    Status = "added"
	StatusUpdated  Status = "updated"
	StatusRemoved  Status = "removed"
	StatusNotFound Status = "not_found"
	StatusCleared  Status = "cleared"
)

// Cart is an ordered collection of line items, at most one per product id.
// All methods are safe for concurrent use.
type Cart struct {
	mu       sync.RWMutex
	currency string
	items    []domain.CartItem
}

func New(currency string) *Cart {
	return &Cart{currency: currency}
}

// Add puts quantity units of the product into the cart. If the product is
// already present its quantity is incremented and the existing snapshot
// price is kept; the catalog is static, so the first-seen price stands for
// the life of the cart line.
func (c *Cart) Add(p domain.Product, quantity int) (domain.CartSummary, Status, error) {
	if quantity < 1 {
		return c.Summary(), Status(""), ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == p.ID {
			c.items[i].Quantity += quantity
			return c.summaryLocked(), StatusUpdated, nil
		}
	}

	c.items = append(c.items, domain.CartItem{
		ProductID:   p.ID,
		ProductName: p.Name,
		UnitPrice:   p.Price,
		Quantity:    quantity,
	})
	return c.summaryLocked(), StatusAdded, nil
}

// Remove drops the product's line if present. Removing an absent product is
// a reported no-op, not an error.
func (c *Cart) Remove(productID string) (domain.CartSummary, Status) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if item.ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return c.summaryLocked(), StatusRemoved
		}
	}
	return c.summaryLocked(), StatusNotFound
}

// UpdateQuantity replaces the line's quantity. A non-positive quantity is
// removal intent and delegates to Remove.
func (c *Cart) UpdateQuantity(productID string, quantity int) (domain.CartSummary, Status) {
	if quantity <= 0 {
		return c.Remove(productID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			return c.summaryLocked(), StatusUpdated
		}
	}
	return c.summaryLocked(), StatusNotFound
}

// Summary returns a value snapshot of the cart; mutating the result never
// affects the cart.
func (c *Cart) Summary() domain.CartSummary {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.summaryLocked()
}

// Clear empties the cart. Idempotent.
func (c *Cart) Clear() domain.CartSummary {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	return c.summaryLocked()
}

func (c *Cart) summaryLocked() domain.CartSummary {
	items := make([]domain.CartItem, len(c.items))
	copy(items, c.items)

	var total int64
	for _, item := range items {
		total += item.UnitPrice * int64(item.Quantity)
	}

	return domain.CartSummary{
		Items:     items,
		Total:     total,
		Currency:  c.currency,
		ItemCount: len(items),
	}
}
