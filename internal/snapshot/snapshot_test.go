package snapshot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchbook/exchange/internal/model"
	"github.com/matchbook/exchange/internal/quant"
)

func mustPrice(t *testing.T, s string) quant.Price {
	t.Helper()
	p, err := quant.NewPrice(s)
	require.NoError(t, err)
	return p
}

func mustVolume(t *testing.T, s string) quant.Volume {
	t.Helper()
	v, err := quant.NewVolume(s)
	require.NoError(t, err)
	return v
}

func TestPersistWritesHeaderAndRows(t *testing.T) {
	dir := t.TempDir()
	p := NewPersister(dir)

	orders := []model.Order{
		{Price: mustPrice(t, "100"), Volume: mustVolume(t, "1"), Side: model.Ask, OrderType: model.Limit, Timestamp: time.Now()},
		{Price: mustPrice(t, "90"), Volume: mustVolume(t, "2"), Side: model.Bid, OrderType: model.Limit, Timestamp: time.Now()},
	}
	require.NoError(t, p.Persist("BTC/USD", orders, false, false))

	data, err := os.ReadFile(filepath.Join(dir, "BTC-USD_order_book.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "price,volume,side,timestamp,order_type")
}

func TestPersistWithTimestampAppendsSuffixToFilename(t *testing.T) {
	dir := t.TempDir()
	p := NewPersister(dir)
	require.NoError(t, p.Persist("BTC", nil, true, false))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Name(), "BTC_order_book_")
}

func TestPersistSortBySideOrdersAsksThenBidsDescending(t *testing.T) {
	dir := t.TempDir()
	p := NewPersister(dir)

	orders := []model.Order{
		{Price: mustPrice(t, "10"), Side: model.Ask, Timestamp: time.Now()},
		{Price: mustPrice(t, "20"), Side: model.Ask, Timestamp: time.Now()},
		{Price: mustPrice(t, "5"), Side: model.Bid, Timestamp: time.Now()},
		{Price: mustPrice(t, "15"), Side: model.Bid, Timestamp: time.Now()},
	}
	require.NoError(t, p.Persist("BTC", orders, false, true))

	data, err := os.ReadFile(filepath.Join(dir, "BTC_order_book.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[1], "20,0,ask,"))
	assert.True(t, strings.HasPrefix(lines[2], "10,0,ask,"))
	assert.True(t, strings.HasPrefix(lines[3], "15,0,bid,"))
	assert.True(t, strings.HasPrefix(lines[4], "5,0,bid,"))

	loader := NewLoader(nil)
	loaded, err := loader.LoadFiles([]string{filepath.Join(dir, "BTC_order_book.csv")})
	require.NoError(t, err)
	rows := loaded["BTC"]
	require.Len(t, rows, 4)
}

func TestLoadFilesRoundTripsAndAssignsFreshIDs(t *testing.T) {
	dir := t.TempDir()
	p := NewPersister(dir)
	ts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	orders := []model.Order{
		{Price: mustPrice(t, "100"), Volume: mustVolume(t, "1"), Side: model.Ask, OrderType: model.Limit, Timestamp: ts},
	}
	require.NoError(t, p.Persist("BTC", orders, false, false))

	loader := NewLoader(nil)
	loaded, err := loader.LoadFiles([]string{filepath.Join(dir, "BTC_order_book.csv")})
	require.NoError(t, err)

	got := loaded["BTC"]
	require.Len(t, got, 1)
	assert.Equal(t, "100", got[0].Price.String())
	assert.Equal(t, "1", got[0].Volume.String())
	assert.NotEqual(t, orders[0].ID, got[0].ID)
}

func TestLoadFilesSkipsMalformedRowsAndReportsThem(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "BTC_order_book.csv")
	content := "price,volume,side,timestamp,order_type\n" +
		"100,1,ask,2026-01-01T00:00:00Z,limit\n" +
		"not-a-price,1,ask,2026-01-01T00:00:00Z,limit\n" +
		"90,1,bid,2026-01-01T00:00:00Z,limit\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	var badRows []int
	loader := NewLoader(func(p string, line int, err error) {
		badRows = append(badRows, line)
	})
	loaded, err := loader.LoadFiles([]string{path})
	require.NoError(t, err)

	assert.Equal(t, []int{3}, badRows)
	assert.Len(t, loaded["BTC"], 2)
}

func TestLoadFilesInfersSymbolFromFilenamePrefix(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ETH_USD_order_book_20260101.csv")
	content := "price,volume,side,timestamp,order_type\n100,1,ask,2026-01-01T00:00:00Z,limit\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	loader := NewLoader(nil)
	loaded, err := loader.LoadFiles([]string{path})
	require.NoError(t, err)

	_, ok := loaded["ETH"]
	assert.True(t, ok)
}
