package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchbook/exchange/internal/book"
	"github.com/matchbook/exchange/internal/ledger"
	"github.com/matchbook/exchange/internal/model"
	"github.com/matchbook/exchange/internal/quant"
)

func TestGetBookReturnsNotFoundForUnknownPair(t *testing.T) {
	s := New(book.NewStore(), ledger.New())
	_, err := s.GetBook("XBTUSD")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetBookReturnsLevels(t *testing.T) {
	store := book.NewStore()
	price, _ := quant.NewPrice("100")
	volume, _ := quant.NewVolume("2")
	store.Replace("XBTUSD", []model.Order{{Price: price, Volume: volume}})

	s := New(store, ledger.New())
	levels, err := s.GetBook("XBTUSD")
	require.NoError(t, err)
	require.Len(t, levels, 1)
	assert.Equal(t, "100", levels[0].Price)
	assert.Equal(t, "2", levels[0].Volume)
}

func TestGetTradesReturnsNotFoundForUnknownTrader(t *testing.T) {
	s := New(book.NewStore(), ledger.New())
	_, err := s.GetTrades("alice")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetTradesReturnsHistory(t *testing.T) {
	led := ledger.New()
	led.Append("alice", model.Trade{Status: model.StatusNew})

	s := New(book.NewStore(), led)
	trades, err := s.GetTrades("alice")
	require.NoError(t, err)
	assert.Len(t, trades, 1)
}
