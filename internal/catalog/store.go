package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vastra/commerce-core/internal/domain"
)

// Common errors returned by catalog stores
var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidFilter   = errors.New("invalid filter")
)

// Filter narrows a catalog listing. Nil price bounds mean "no bound";
// category and color match case-insensitively; all supplied fields must
// match (conjunction).
type Filter struct {
	Category string
	Color    string
	MinPrice *int64
	MaxPrice *int64
}

func (f Filter) validate() error {
	if f.MinPrice != nil && *f.MinPrice < 0 {
		return fmt.Errorf("%w: min_price must be non-negative", ErrInvalidFilter)
	}
	if f.MaxPrice != nil && *f.MaxPrice < 0 {
		return fmt.Errorf("%w: max_price must be non-negative", ErrInvalidFilter)
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return fmt.Errorf("%w: min_price must not exceed max_price", ErrInvalidFilter)
	}
	return nil
}

func (f Filter) matches(p domain.Product) bool {
	if f.Category != "" && !strings.EqualFold(f.Category, p.Category) {
		return false
	}
	if f.Color != "" && !strings.EqualFold(f.Color, p.Color) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	return true
}

// Store is the read-only product catalog.
type Store interface {
	// List returns products matching the filter, in catalog insertion order.
	// An empty filter returns the whole catalog; no match returns an empty
	// slice, not an error.
	List(ctx context.Context, f Filter) ([]domain.Product, error)

	// GetByID looks a product up by its exact id (case-sensitive).
	GetByID(ctx context.Context, id string) (domain.Product, error)

	Close() error
}
