// Package snapshot persists a book to a CSV file and loads one back. The
// id field is intentionally not persisted; loading always mints fresh
// ids, so snapshot-based recovery is not id-stable.
//
// encoding/csv is used rather than a third-party CSV library: no example
// in the corpus pulls in one for this kind of flat record file, and the
// format here (five fixed columns, no quoting edge cases beyond what csv
// handles) doesn't need more than the standard library offers.
package snapshot

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/matchbook/exchange/internal/model"
	"github.com/matchbook/exchange/internal/quant"
)

const timestampLayout = "20060102150405"

// header is the fixed column order for persisted books.
var header = []string{"price", "volume", "side", "timestamp", "order_type"}

// Persister writes books to a directory on disk.
type Persister struct {
	dir string
}

// NewPersister returns a Persister rooted at dir. The directory is not
// created here; callers are expected to have provisioned kraken.persist.
func NewPersister(dir string) *Persister {
	return &Persister{dir: dir}
}

// Persist writes orders for symbol to <dir>/<symbol>_order_book[_<ts>].csv.
// When sortBySide is true, asks are written first in descending price,
// then bids in descending price; otherwise orders are written as given.
func (p *Persister) Persist(symbol string, orders []model.Order, includeTimestamp, sortBySide bool) error {
	name := filenameSafe(symbol) + "_order_book"
	if includeTimestamp {
		now := time.Now()
		name += fmt.Sprintf("_%s%06d", now.Format(timestampLayout), now.Nanosecond()/1000)
	}
	name += ".csv"

	f, err := os.Create(filepath.Join(p.dir, name))
	if err != nil {
		return fmt.Errorf("create snapshot file: %w", err)
	}
	defer f.Close()

	toWrite := orders
	if sortBySide {
		toWrite = sortedForPersist(orders)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write snapshot header: %w", err)
	}
	for _, o := range toWrite {
		record := []string{
			o.Price.String(),
			o.Volume.String(),
			string(o.Side),
			o.Timestamp.Format(time.RFC3339),
			string(o.OrderType),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write snapshot row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// sortedForPersist returns asks (descending price) followed by bids
// (descending price), the canonical on-disk ordering.
func sortedForPersist(orders []model.Order) []model.Order {
	var asks, bids []model.Order
	for _, o := range orders {
		if o.Side == model.Ask {
			asks = append(asks, o)
		} else {
			bids = append(bids, o)
		}
	}
	sort.SliceStable(asks, func(i, j int) bool { return asks[i].Price.GreaterThan(asks[j].Price) })
	sort.SliceStable(bids, func(i, j int) bool { return bids[i].Price.GreaterThan(bids[j].Price) })
	return append(asks, bids...)
}

// Loader reads one or more snapshot files into a BookStore-compatible
// mapping. Per-row deserialization errors are reported to the onRowError
// callback given to NewLoader, and the remainder of the file is still
// loaded.
type Loader struct {
	onRowError func(path string, line int, err error)
}

// NewLoader returns a Loader. onRowError, if non-nil, is invoked for every
// row that fails to parse; the row is skipped and loading continues.
func NewLoader(onRowError func(path string, line int, err error)) *Loader {
	return &Loader{onRowError: onRowError}
}

// LoadFiles reads every path and returns a symbol -> orders mapping. The
// symbol for each file is inferred from the filename prefix before the
// first underscore. Within each loaded book, asks are sorted ascending by
// price and bids descending by price.
func (l *Loader) LoadFiles(paths []string) (map[string][]model.Order, error) {
	out := make(map[string][]model.Order)
	for _, path := range paths {
		symbol := symbolFromPath(path)
		orders, err := l.loadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		out[symbol] = append(out[symbol], orders...)
	}
	for symbol, orders := range out {
		out[symbol] = sortedForLoad(orders)
	}
	return out, nil
}

func (l *Loader) loadFile(path string) ([]model.Order, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var orders []model.Order
	for i, row := range rows[1:] {
		lineNo := i + 2
		order, err := parseRow(row)
		if err != nil {
			if l.onRowError != nil {
				l.onRowError(path, lineNo, err)
			}
			continue
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func parseRow(row []string) (model.Order, error) {
	if len(row) != len(header) {
		return model.Order{}, fmt.Errorf("expected %d fields, got %d", len(header), len(row))
	}
	price, err := quant.NewPrice(row[0])
	if err != nil {
		return model.Order{}, fmt.Errorf("price: %w", err)
	}
	volume, err := quant.NewVolume(row[1])
	if err != nil {
		return model.Order{}, fmt.Errorf("volume: %w", err)
	}
	side := model.Side(row[2])
	if side != model.Ask && side != model.Bid {
		return model.Order{}, fmt.Errorf("invalid side %q", row[2])
	}
	ts, err := time.Parse(time.RFC3339, row[3])
	if err != nil {
		return model.Order{}, fmt.Errorf("timestamp: %w", err)
	}
	orderType := model.OrderType(row[4])

	return model.Order{
		ID:        uuid.New(),
		Price:     price,
		Volume:    volume,
		Side:      side,
		OrderType: orderType,
		Timestamp: ts,
	}, nil
}

// filenameSafe replaces path separators in a symbol so that pairs written
// with a slash (e.g. "BTC/USD") produce a flat filename instead of an
// unintended subdirectory.
func filenameSafe(symbol string) string {
	return strings.NewReplacer("/", "-", string(filepath.Separator), "-").Replace(symbol)
}

func symbolFromPath(path string) string {
	base := filepath.Base(path)
	if idx := strings.Index(base, "_"); idx >= 0 {
		return base[:idx]
	}
	return base
}

func sortedForLoad(orders []model.Order) []model.Order {
	var asks, bids []model.Order
	for _, o := range orders {
		if o.Side == model.Ask {
			asks = append(asks, o)
		} else {
			bids = append(bids, o)
		}
	}
	sort.SliceStable(asks, func(i, j int) bool { return asks[i].Price.LessThan(asks[j].Price) })
	sort.SliceStable(bids, func(i, j int) bool { return bids[i].Price.GreaterThan(bids[j].Price) })
	return append(asks, bids...)
}
