// Package ledger holds the per-trader append-only trade history. It is the
// matching engine's only writer; appends within a single trader preserve
// the order the matcher produced them.
package ledger

import (
	"sync"

	"github.com/matchbook/exchange/internal/model"
)

// Ledger maps trader identifier to an ordered sequence of trades.
type Ledger struct {
	mu       sync.RWMutex
	byTrader map[string][]model.Trade
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{byTrader: make(map[string][]model.Trade)}
}

// Append adds trade to trader's history. Safe for concurrent callers;
// serialized against itself so that appends from a single goroutine keep
// their relative order.
func (l *Ledger) Append(trader string, trade model.Trade) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.byTrader[trader] = append(l.byTrader[trader], trade)
}

// AppendAll appends a contiguous run of trades for trader under a single
// lock acquisition, so that a submission's derived trades are never
// interleaved with another goroutine's append for the same trader.
func (l *Ledger) AppendAll(trader string, trades []model.Trade) {
	if len(trades) == 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.byTrader[trader] = append(l.byTrader[trader], trades...)
}

// Get returns a copy of trader's trade history and whether any exists.
func (l *Ledger) Get(trader string) ([]model.Trade, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	trades, ok := l.byTrader[trader]
	if !ok {
		return nil, false
	}
	out := make([]model.Trade, len(trades))
	copy(out, trades)
	return out, true
}
