// Package matching implements the single-consumer matching engine: the
// only writer to the book store and to the ledger while an order is being
// processed. It is the hardest-constrained subsystem in the service and
// is deliberately free of any recover() — a panic here is a single point
// of serialization failure and must be fatal to the process rather than
// silently swallowed.
package matching

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/matchbook/exchange/internal/book"
	"github.com/matchbook/exchange/internal/intake"
	"github.com/matchbook/exchange/internal/ledger"
	"github.com/matchbook/exchange/internal/model"
	"github.com/matchbook/exchange/internal/quant"
)

// Persister writes a post-trade book to durable storage. Implemented by
// internal/snapshot; isolated behind an interface here so the engine's
// tests don't need a filesystem.
type Persister interface {
	Persist(symbol string, orders []model.Order, includeTimestamp, sortBySide bool) error
}

// Clock abstracts time.Now so tests can pin timestamps; defaults to
// time.Now in production.
type Clock func() time.Time

// Engine is the single consumer of the intake queue.
type Engine struct {
	queue     *intake.Queue
	store     *book.Store
	ledger    *ledger.Ledger
	persister Persister
	logger    *zap.SugaredLogger
	now       Clock
}

// New constructs a matching engine. logger must not be nil; pass
// zap.NewNop().Sugar() in tests that don't care about log output.
func New(q *intake.Queue, store *book.Store, led *ledger.Ledger, persister Persister, logger *zap.SugaredLogger) *Engine {
	return &Engine{
		queue:     q,
		store:     store,
		ledger:    led,
		persister: persister,
		logger:    logger,
		now:       time.Now,
	}
}

// Run drains the intake queue until it is closed and emptied. It is meant
// to be the body of the single matcher goroutine. When Run returns it
// closes the queue, so later submissions fail with intake.ErrClosed. ctx
// is checked only between requests: cancelling it does not wake a blocked
// Next, and once it is cancelled Run returns after the request in hand
// without draining the rest. Close the intake queue and leave ctx live
// for a graceful drain-and-stop.
func (e *Engine) Run(ctx context.Context) {
	defer e.queue.Close()
	for {
		req, ok := e.queue.Next()
		if !ok {
			return
		}
		e.process(req)
		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}

// process runs an incoming order request through acknowledgement,
// matching, and post-trade persistence. It is synchronous and does not
// return an error: every failure mode it can encounter (missing book,
// exhausted counterparty liquidity, persistence failure) is handled in
// place and logged rather than propagated.
func (e *Engine) process(req model.OrderRequest) {
	now := e.now()

	// Acknowledge the submission before attempting to match it.
	ack := model.Trade{
		ID:        uuid.New(),
		Trader:    req.Trader,
		Pair:      req.Pair,
		Side:      string(req.Side),
		Price:     req.Price,
		Volume:    req.Volume,
		OrderType: req.OrderType,
		Timestamp: now,
		Status:    model.StatusNew,
	}
	e.ledger.Append(req.Trader, ack)

	// Acquire exclusive access to the book for the pair. If no book
	// exists yet, the acknowledgement stands alone.
	var fills []model.Trade
	e.store.WithExclusive(req.Pair, func(orders []model.Order) []model.Order {
		e.logger.Debugw("book state before match", "pair", req.Pair, "resting", len(orders))
		var result []model.Order
		result, fills = e.match(req, orders, ack.ID, now)
		e.logger.Debugw("book state after match", "pair", req.Pair, "resting", len(result), "fills", len(fills))
		return result
	})

	if len(fills) > 0 {
		e.ledger.AppendAll(req.Trader, fills)
	}

	snapshot, found := e.store.Get(req.Pair)
	if !found {
		return
	}
	if err := e.persister.Persist(req.Pair, snapshot, true, true); err != nil {
		e.logger.Errorw("failed to persist order book after match", "pair", req.Pair, "error", err)
	}
}

// match applies strict price-time priority to req against a single
// snapshot of resting orders. It returns the book's new resting order
// list and the fill trades produced, in candidate-consumption order.
func (e *Engine) match(req model.OrderRequest, orders []model.Order, ackID uuid.UUID, now time.Time) ([]model.Order, []model.Trade) {
	counterpartySide := model.CounterpartySideFor(req.Side)

	var candidates, others []model.Order
	for _, o := range orders {
		if o.Side == counterpartySide {
			candidates = append(candidates, o)
		} else {
			others = append(others, o)
		}
	}

	// Price priority, stable so arrival order breaks ties.
	if counterpartySide == model.Ask {
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Price.Cmp(candidates[j].Price) < 0
		})
	} else {
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Price.Cmp(candidates[j].Price) > 0
		})
	}

	remaining := req.Volume
	var fills []model.Trade
	survivors := make([]model.Order, 0, len(candidates))

	i := 0
	for ; i < len(candidates); i++ {
		if !remaining.IsPositive() {
			break
		}
		cand := candidates[i]
		if req.OrderType == model.Limit && !limitCrosses(req, cand) {
			// Candidates are sorted by price priority; once one fails to
			// cross, every worse-priced candidate after it fails too.
			break
		}

		matched := quant.Min(cand.Volume, remaining)
		preMatchVolume := cand.Volume
		cand.Volume = cand.Volume.Sub(matched)
		remaining = remaining.Sub(matched)

		status := model.StatusPartiallyFilled
		recorded := matched
		if cand.Volume.LessThanOrEqualZero() {
			status = model.StatusFilled
			recorded = preMatchVolume
		} else {
			survivors = append(survivors, cand)
		}

		fills = append(fills, model.Trade{
			ID:        cand.ID,
			Trader:    req.Trader,
			Pair:      req.Pair,
			Side:      string(cand.Side),
			Price:     cand.Price,
			Volume:    recorded,
			OrderType: cand.OrderType,
			Timestamp: now,
			Status:    status,
		})
	}
	// Untouched candidates (loop exited early) keep their place.
	survivors = append(survivors, candidates[i:]...)

	result := append(others, survivors...)

	// Residual handling: a market order drops what it couldn't fill, a
	// limit order rests the remainder on the book.
	if remaining.IsPositive() {
		if req.OrderType == model.Market {
			e.logger.Infow("market order could not be fully matched", "pair", req.Pair, "trader", req.Trader, "remaining", remaining.String())
		} else {
			result = append(result, model.Order{
				ID:        ackID,
				Price:     req.Price,
				Volume:    remaining,
				Side:      model.RestingSideFor(req.Side),
				OrderType: model.Limit,
				Timestamp: now,
			})
		}
	}

	book.SortBySideThenPriceDesc(result)
	return result, fills
}

// limitCrosses reports whether a limit submission's price is aggressive
// enough to match a given counterparty candidate.
func limitCrosses(req model.OrderRequest, candidate model.Order) bool {
	if req.Side == model.Buy {
		return req.Price.GreaterThanOrEqual(candidate.Price)
	}
	return req.Price.LessThanOrEqual(candidate.Price)
}
