package depth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/matchbook/exchange/internal/book"
	"github.com/matchbook/exchange/internal/model"
	"github.com/matchbook/exchange/internal/quant"
	"github.com/matchbook/exchange/internal/snapshot"
)

// DefaultPollInterval is the ingestor's default per-cycle sleep.
const DefaultPollInterval = 10 * time.Second

// Fetcher is the subset of KrakenClient the ingestor depends on, so tests
// can substitute a canned source without network access.
type Fetcher interface {
	FetchDepth(ctx context.Context, pair string) (asks, bids []RawLevel, err error)
}

// Persister is the subset of snapshot.Persister the ingestor depends on.
type Persister interface {
	Persist(symbol string, orders []model.Order, includeTimestamp, sortBySide bool) error
}

// Ingestor periodically refreshes every configured symbol's book from an
// external depth source. Offline mode does not use an Ingestor; see
// LoadOffline.
type Ingestor struct {
	symbols      []string
	pollInterval time.Duration
	fetcher      Fetcher
	store        *book.Store
	persister    Persister
	logger       *zap.SugaredLogger
}

// New constructs an Ingestor. pollInterval <= 0 is replaced with
// DefaultPollInterval.
func New(symbols []string, pollInterval time.Duration, fetcher Fetcher, store *book.Store, persister Persister, logger *zap.SugaredLogger) *Ingestor {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	return &Ingestor{
		symbols:      symbols,
		pollInterval: pollInterval,
		fetcher:      fetcher,
		store:        store,
		persister:    persister,
		logger:       logger,
	}
}

// Run polls forever until ctx is cancelled, performing one refresh cycle
// across every configured symbol, then sleeping for pollInterval.
func (in *Ingestor) Run(ctx context.Context) {
	for {
		in.cycle(ctx)
		select {
		case <-ctx.Done():
			return
		case <-time.After(in.pollInterval):
		}
	}
}

// cycle fetches every symbol in parallel, replaces each book atomically,
// and persists the refreshed book. A per-symbol fetch failure degrades
// that symbol to an empty book without affecting the others.
func (in *Ingestor) cycle(ctx context.Context) {
	var wg sync.WaitGroup
	now := time.Now()

	for _, symbol := range in.symbols {
		wg.Add(1)
		go func(symbol string) {
			defer wg.Done()
			in.refreshOne(ctx, symbol, now)
		}(symbol)
	}
	wg.Wait()
}

func (in *Ingestor) refreshOne(ctx context.Context, symbol string, cycleTime time.Time) {
	asks, bids, err := in.fetcher.FetchDepth(ctx, symbol)
	var orders []model.Order
	if err != nil {
		in.logger.Warnw("depth fetch failed, substituting empty book", "symbol", symbol, "error", err)
		orders = nil
	} else {
		orders = buildOrders(asks, model.Ask, cycleTime)
		orders = append(orders, buildOrders(bids, model.Bid, cycleTime)...)
		book.SortForDisplay(orders)
	}

	in.store.Replace(symbol, orders)

	if err := in.persister.Persist(symbol, orders, false, false); err != nil {
		in.logger.Errorw("failed to persist refreshed book", "symbol", symbol, "error", err)
	}
}

// buildOrders converts raw (price, volume) string pairs into resting
// limit orders for a single side, sharing one cycle-wide timestamp.
func buildOrders(levels []RawLevel, side model.Side, ts time.Time) []model.Order {
	orders := make([]model.Order, 0, len(levels))
	for _, lvl := range levels {
		price, err := quant.NewPrice(lvl.Price)
		if err != nil {
			continue
		}
		volume, err := quant.NewVolume(lvl.Volume)
		if err != nil {
			continue
		}
		orders = append(orders, model.Order{
			ID:        uuid.New(),
			Price:     price,
			Volume:    volume,
			Side:      side,
			OrderType: model.Limit,
			Timestamp: ts,
		})
	}
	return orders
}

// LoadOffline loads each configured offline snapshot file once and
// populates the store. It does not start the polling loop; callers in
// offline mode should invoke this instead of Run.
func LoadOffline(paths []string, store *book.Store, loader *snapshot.Loader) error {
	bySymbol, err := loader.LoadFiles(paths)
	if err != nil {
		return err
	}
	for symbol, orders := range bySymbol {
		store.Replace(symbol, orders)
	}
	return nil
}
