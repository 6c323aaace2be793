package intake

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchbook/exchange/internal/model"
)

func TestNewRaisesSmallCapacityToMinimum(t *testing.T) {
	q := New(1)
	assert.Equal(t, MinCapacity, cap(q.ch))
}

func TestSubmitThenNextRoundTrips(t *testing.T) {
	q := New(MinCapacity)
	req := model.OrderRequest{Trader: "alice"}
	require.NoError(t, q.Submit(req))

	got, ok := q.Next()
	require.True(t, ok)
	assert.Equal(t, "alice", got.Trader)
}

func TestNextPreservesFIFOOrder(t *testing.T) {
	q := New(MinCapacity)
	for i := 0; i < 5; i++ {
		require.NoError(t, q.Submit(model.OrderRequest{Pair: string(rune('a' + i))}))
	}
	for i := 0; i < 5; i++ {
		got, ok := q.Next()
		require.True(t, ok)
		assert.Equal(t, string(rune('a'+i)), got.Pair)
	}
}

func TestSubmitAfterCloseReturnsErrClosed(t *testing.T) {
	q := New(MinCapacity)
	q.Close()
	err := q.Submit(model.OrderRequest{})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestCloseIsIdempotent(t *testing.T) {
	q := New(MinCapacity)
	q.Close()
	assert.NotPanics(t, func() { q.Close() })
}

func TestNextDrainsQueuedItemsAfterClose(t *testing.T) {
	q := New(MinCapacity)
	require.NoError(t, q.Submit(model.OrderRequest{Trader: "alice"}))
	require.NoError(t, q.Submit(model.OrderRequest{Trader: "bob"}))
	q.Close()

	first, ok := q.Next()
	require.True(t, ok)
	assert.Equal(t, "alice", first.Trader)

	second, ok := q.Next()
	require.True(t, ok)
	assert.Equal(t, "bob", second.Trader)

	_, ok = q.Next()
	assert.False(t, ok)
}

func TestCloseDuringBlockedSubmitDoesNotPanic(t *testing.T) {
	q := New(MinCapacity)
	for i := 0; i < MinCapacity; i++ {
		require.NoError(t, q.Submit(model.OrderRequest{}))
	}

	var wg sync.WaitGroup
	wg.Add(1)
	var submitErr error
	go func() {
		defer wg.Done()
		submitErr = q.Submit(model.OrderRequest{Trader: "blocked"})
	}()

	time.Sleep(10 * time.Millisecond)
	assert.NotPanics(t, func() { q.Close() })
	wg.Wait()
	assert.ErrorIs(t, submitErr, ErrClosed)
}
