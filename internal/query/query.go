// Package query implements the read-only lookups exposed over RPC:
// current book state for an instrument, and trade history for a trader.
// Both are snapshot reads that may block briefly on the book store's or
// ledger's internal locks but never observe a torn state.
package query

import (
	"errors"

	"github.com/matchbook/exchange/internal/book"
	"github.com/matchbook/exchange/internal/ledger"
	"github.com/matchbook/exchange/internal/model"
)

// ErrNotFound is returned when the requested symbol or trader is unknown.
var ErrNotFound = errors.New("not found")

// Level is a single (price, volume) point in a book snapshot.
type Level struct {
	Price  string
	Volume string
}

// Surface answers GetBook and GetTrades lookups against a store and
// ledger.
type Surface struct {
	store  *book.Store
	ledger *ledger.Ledger
}

// New returns a query surface over store and ledger.
func New(store *book.Store, ledger *ledger.Ledger) *Surface {
	return &Surface{store: store, ledger: ledger}
}

// GetBook returns the resting orders for pair as (price, volume) levels in
// book order, or ErrNotFound if the pair has no book.
func (s *Surface) GetBook(pair string) ([]Level, error) {
	orders, ok := s.store.Get(pair)
	if !ok {
		return nil, ErrNotFound
	}
	levels := make([]Level, len(orders))
	for i, o := range orders {
		levels[i] = Level{Price: o.Price.String(), Volume: o.Volume.String()}
	}
	return levels, nil
}

// GetTrades returns trader's trade history, or ErrNotFound if the trader
// has never submitted an order.
func (s *Surface) GetTrades(trader string) ([]model.Trade, error) {
	trades, ok := s.ledger.Get(trader)
	if !ok {
		return nil, ErrNotFound
	}
	return trades, nil
}
