package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchbook/exchange/internal/model"
)

func TestGetOnUnknownTraderReturnsNotOK(t *testing.T) {
	l := New()
	_, ok := l.Get("alice")
	assert.False(t, ok)
}

func TestAppendThenGet(t *testing.T) {
	l := New()
	l.Append("alice", model.Trade{Status: model.StatusNew})

	got, ok := l.Get("alice")
	require.True(t, ok)
	assert.Len(t, got, 1)
}

func TestAppendAllPreservesOrderAndSkipsEmpty(t *testing.T) {
	l := New()
	l.Append("alice", model.Trade{Status: model.StatusNew})
	l.AppendAll("alice", []model.Trade{
		{Status: model.StatusPartiallyFilled},
		{Status: model.StatusFilled},
	})
	l.AppendAll("alice", nil)

	got, ok := l.Get("alice")
	require.True(t, ok)
	require.Len(t, got, 3)
	assert.Equal(t, model.StatusNew, got[0].Status)
	assert.Equal(t, model.StatusPartiallyFilled, got[1].Status)
	assert.Equal(t, model.StatusFilled, got[2].Status)
}

func TestGetReturnsACopy(t *testing.T) {
	l := New()
	l.Append("alice", model.Trade{Status: model.StatusNew})

	got, _ := l.Get("alice")
	got[0].Status = model.StatusFilled

	again, _ := l.Get("alice")
	assert.Equal(t, model.StatusNew, again[0].Status)
}

func TestTradersAreIndependent(t *testing.T) {
	l := New()
	l.Append("alice", model.Trade{Trader: "alice"})
	_, ok := l.Get("bob")
	assert.False(t, ok)
}
