// Package book holds the per-instrument order book store. Mutations are
// serialized per symbol so that readers never observe a torn book and so
// that a depth refresh cannot interleave with an in-flight match.
package book

import (
	"sort"
	"sync"

	"github.com/matchbook/exchange/internal/model"
)

// entry is one instrument's resting orders, guarded by its own mutex so
// that concurrent symbols never contend with each other.
type entry struct {
	mu     sync.Mutex
	orders []model.Order
}

// Store maps instrument symbol to its order book. Entries are created
// lazily, the first time a symbol is seen by Replace.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

// NewStore returns an empty book store.
func NewStore() *Store {
	return &Store{entries: make(map[string]*entry)}
}

func (s *Store) entryFor(symbol string, create bool) (*entry, bool) {
	s.mu.RLock()
	e, ok := s.entries[symbol]
	s.mu.RUnlock()
	if ok || !create {
		return e, ok
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok = s.entries[symbol]
	if ok {
		return e, true
	}
	e = &entry{}
	s.entries[symbol] = e
	return e, false
}

// Get returns a consistent copy of the resting orders for symbol, and
// whether the symbol has a book at all.
func (s *Store) Get(symbol string) ([]model.Order, bool) {
	e, ok := s.entryFor(symbol, false)
	if !ok {
		return nil, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]model.Order, len(e.orders))
	copy(out, e.orders)
	return out, true
}

// Replace atomically swaps the resting orders for symbol, creating the
// entry if this is the first refresh seen for it. Used by the depth
// ingestor; never interleaves with an in-flight WithExclusive on the same
// symbol because both serialize through the entry's mutex.
func (s *Store) Replace(symbol string, orders []model.Order) {
	e, _ := s.entryFor(symbol, true)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.orders = orders
}

// WithExclusive grants fn exclusive mutable access to symbol's resting
// order list for the duration of the call, and writes back whatever fn
// returns. If the symbol has no book yet, fn is not invoked and ok is
// false: per the matching engine's contract, a submission against an
// unknown pair produces no matching.
func (s *Store) WithExclusive(symbol string, fn func(orders []model.Order) []model.Order) (ok bool) {
	e, exists := s.entryFor(symbol, false)
	if !exists {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.orders = fn(e.orders)
	return true
}

// SortForDisplay orders a book snapshot the way the ingestor and persister
// expect: descending price across the whole list, with no separation of
// sides. Used when a fresh depth snapshot isn't yet side-partitioned.
func SortForDisplay(orders []model.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Price.GreaterThan(orders[j].Price)
	})
}

// SortBySideThenPriceDesc orders a book snapshot as (side, price desc):
// asks first in descending price, then bids in descending price. This is
// the canonical matcher write-back and persistence ordering.
func SortBySideThenPriceDesc(orders []model.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		a, b := orders[i], orders[j]
		if a.Side != b.Side {
			return a.Side == model.Ask
		}
		return a.Price.GreaterThan(b.Price)
	})
}
