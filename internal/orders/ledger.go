package orders

import (
	"sync"

	"github.com/Ravi2k3/E-commerce-assessment/internal/domain"
)

// Ledger is the append-only record of completed orders. Nothing ever
// mutates or removes a stored order, and its length doubles as the
// global order counter.
type Ledger struct {
	mu     sync.RWMutex
	orders []domain.Order
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Append assigns the next dense ID (current length + 1) and stores the
// order. ID assignment and the append happen under one lock, so
// concurrent checkouts get unique, contiguous IDs.
func (l *Ledger) Append(order domain.Order) domain.Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	order.ID = int64(len(l.orders)) + 1
	l.orders = append(l.orders, order)
	return order
}

// All returns a copy of the full order history in append order.
func (l *Ledger) All() []domain.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Order, len(l.orders))
	copy(out, l.orders)
	return out
}

// Len is the number of completed orders, i.e. the order counter.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.orders)
}
