package catalog

import (
	"context"

	"github.com/vastra/commerce-core/internal/domain"
)

// MemoryStore implements Store over an immutable in-memory product list.
// It is safe for concurrent readers because nothing ever mutates it after
// construction.
type MemoryStore struct {
	products []domain.Product
	byID     map[string]int // product id -> index into products
}

// NewMemoryStore builds a store over the given products, preserving their
// order. Use NewMemoryStore(Seed()...) for the standard catalog.
func NewMemoryStore(products ...domain.Product) *MemoryStore {
	s := &MemoryStore{
		products: products,
		byID:     make(map[string]int, len(products)),
	}
	for i, p := range products {
		s.byID[p.ID] = i
	}
	return s
}

func (s *MemoryStore) List(_ context.Context, f Filter) ([]domain.Product, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	result := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if f.matches(p) {
			result = append(result, p)
		}
	}
	return result, nil
}

func (s *MemoryStore) GetByID(_ context.Context, id string) (domain.Product, error) {
	i, ok := s.byID[id]
	if !ok {
		return domain.Product{}, ErrProductNotFound
	}
	return s.products[i], nil
}

func (s *MemoryStore) Close() error {
	return nil
}
