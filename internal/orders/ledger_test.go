package orders

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vastra/commerce-core/internal/domain"
)

func fixedClock() func() time.Time {
	ts := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return ts }
}

func testLines() []domain.OrderLineItem {
	return []domain.OrderLineItem{
		{ProductID: "shoes-001", ProductName: "White Sneakers", Quantity: 2, UnitPrice: 1299, ItemTotal: 2598},
		{ProductID: "acc-003", ProductName: "Black Cap", Quantity: 1, UnitPrice: 399, ItemTotal: 399},
	}
}

func TestLedger_Append(t *testing.T) {
	l := NewLedgerWithClock(fixedClock())

	order := l.Append(testLines(), domain.CurrencyINR)

	assert.Equal(t, "ORD-20260831-0001", order.ID)
	assert.Equal(t, int64(2997), order.Total)
	assert.Equal(t, domain.CurrencyINR, order.Currency)
	assert.Equal(t, domain.OrderStatusConfirmed, order.Status)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, 1, l.Len())
}

func TestLedger_Append_SequenceIsMonotonic(t *testing.T) {
	l := NewLedgerWithClock(fixedClock())

	for i := 1; i <= 3; i++ {
		order := l.Append(testLines(), domain.CurrencyINR)
		assert.Equal(t, fmt.Sprintf("ORD-20260831-%04d", i), order.ID)
	}
}

func TestLedger_Append_ConcurrentIDsAreUnique(t *testing.T) {
	l := NewLedger()

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			l.Append(testLines(), domain.CurrencyINR)
		}()
	}
	wg.Wait()

	seen := make(map[string]bool, n)
	for _, o := range l.All() {
		assert.False(t, seen[o.ID], "duplicate order id %s", o.ID)
		seen[o.ID] = true
	}
	assert.Len(t, seen, n)
}

func TestLedger_Append_CopiesLineItems(t *testing.T) {
	l := NewLedgerWithClock(fixedClock())

	lines := testLines()
	l.Append(lines, domain.CurrencyINR)
	lines[0].Quantity = 99

	last, err := l.Last()
	require.NoError(t, err)
	assert.Equal(t, 2, last.Items[0].Quantity)
}

func TestLedger_Last(t *testing.T) {
	l := NewLedgerWithClock(fixedClock())

	_, err := l.Last()
	assert.ErrorIs(t, err, ErrNoOrders)

	l.Append(testLines(), domain.CurrencyINR)
	second := l.Append(testLines()[:1], domain.CurrencyINR)

	last, err := l.Last()
	require.NoError(t, err)
	assert.Equal(t, second.ID, last.ID)
}

func TestLedger_All_ReturnsCopy(t *testing.T) {
	l := NewLedgerWithClock(fixedClock())
	l.Append(testLines(), domain.CurrencyINR)

	all := l.All()
	require.Len(t, all, 1)
	all[0].Total = -1

	again := l.All()
	assert.Equal(t, int64(2997), again[0].Total)
}
