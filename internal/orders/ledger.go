// Package orders keeps the append-only history of completed orders.
package orders

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vastra/commerce-core/internal/domain"
)

var ErrNoOrders = errors.New("no orders recorded")

// Ledger records immutable orders for the lifetime of the process. Ids are
// minted from an explicit atomic counter rather than the ledger length, so
// concurrent appends can never collide; the counter still restarts with the
// process, so ids are only unique within one run.
type Ledger struct {
	mu     sync.RWMutex
	seq    atomic.Uint64
	orders []domain.Order
	now    func() time.Time
}

func NewLedger() *Ledger {
	return &Ledger{now: time.Now}
}

// NewLedgerWithClock fixes the ledger's clock, for tests.
func NewLedgerWithClock(now func() time.Time) *Ledger {
	return &Ledger{now: now}
}

// Append records a confirmed order built from the given line items and
// returns it. Line items are copied; the caller keeps no live reference
// into the ledger.
func (l *Ledger) Append(items []domain.OrderLineItem, currency string) domain.Order {
	lines := make([]domain.OrderLineItem, len(items))
	copy(lines, items)

	var total int64
	for _, li := range lines {
		total += li.ItemTotal
	}

	ts := l.now()
	order := domain.Order{
		ID:        fmt.Sprintf("ORD-%s-%04d", ts.Format("20060102"), l.seq.Add(1)),
		Items:     lines,
		Total:     total,
		Currency:  currency,
		CreatedAt: ts,
		Status:    domain.OrderStatusConfirmed,
	}

	l.mu.Lock()
	l.orders = append(l.orders, order)
	l.mu.Unlock()
	return order
}

// Last returns the most recently appended order.
func (l *Ledger) Last() (domain.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.orders) == 0 {
		return domain.Order{}, ErrNoOrders
	}
	return l.orders[len(l.orders)-1], nil
}

// All returns a copy of the ledger in append order.
func (l *Ledger) All() []domain.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.Order, len(l.orders))
	copy(out, l.orders)
	return out
}

// Len reports how many orders have been recorded.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.orders)
}
