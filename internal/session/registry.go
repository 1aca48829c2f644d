// Package session scopes mutable commerce state to one conversation each.
// The catalog and size charts are shared read-only across sessions; every
// session gets its own cart and order ledger, so two conversations against
// the same process can never observe each other's mutations.
package session

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vastra/commerce-core/internal/cart"
	"github.com/vastra/commerce-core/internal/catalog"
	"github.com/vastra/commerce-core/internal/domain"
	"github.com/vastra/commerce-core/internal/orders"
	"github.com/vastra/commerce-core/internal/service"
	"github.com/vastra/commerce-core/internal/sizing"
)

type Registry struct {
	mu       sync.RWMutex
	store    catalog.Store
	sizes    *sizing.Advisor
	log      *zap.Logger
	sessions map[string]*service.Commerce
}

func NewRegistry(store catalog.Store, sizes *sizing.Advisor, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		store:    store,
		sizes:    sizes,
		log:      logger,
		sessions: make(map[string]*service.Commerce),
	}
}

// NewID mints a fresh session identifier.
func (r *Registry) NewID() string {
	return uuid.NewString()
}

// Get returns the commerce context for a session id, creating it on first
// use. An unknown id is not an error: the conversational layer treats
// session creation as implicit.
func (r *Registry) Get(id string) *service.Commerce {
	r.mu.RLock()
	c, ok := r.sessions[id]
	r.mu.RUnlock()
	if ok {
		return c
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.sessions[id]; ok {
		return c
	}

	c = service.New(
		r.store,
		r.sizes,
		cart.New(domain.CurrencyINR),
		orders.NewLedger(),
		r.log.With(zap.String("session_id", id)),
	)
	r.sessions[id] = c
	r.log.Info("session created", zap.String("session_id", id))
	return c
}

// Len reports how many sessions are live.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
