// Package intake provides the bounded single-consumer order queue that
// funnels every submission through the matching engine in arrival order.
package intake

import (
	"errors"
	"sync"

	"github.com/matchbook/exchange/internal/model"
)

// MinCapacity is the smallest capacity the queue may be constructed with.
const MinCapacity = 100

// ErrClosed is returned by Submit once the queue has been closed, either
// by graceful shutdown or because the matcher has terminated.
var ErrClosed = errors.New("intake closed")

// Queue is a bounded FIFO of order requests. Any number of producers may
// call Submit concurrently; exactly one consumer should call Next in a
// loop.
type Queue struct {
	ch        chan model.OrderRequest
	closeOnce sync.Once
	closedSig chan struct{}
}

// New returns a queue with the given capacity, raised to MinCapacity if
// smaller.
func New(capacity int) *Queue {
	if capacity < MinCapacity {
		capacity = MinCapacity
	}
	return &Queue{
		ch:        make(chan model.OrderRequest, capacity),
		closedSig: make(chan struct{}),
	}
}

// Submit enqueues req, blocking the caller while the queue is full.
// Returns ErrClosed if the queue has been closed in the meantime. Submit
// never panics even if Close races with an in-flight send: the underlying
// channel itself is never closed, only a separate signal is.
func (q *Queue) Submit(req model.OrderRequest) error {
	select {
	case <-q.closedSig:
		return ErrClosed
	default:
	}
	select {
	case q.ch <- req:
		return nil
	case <-q.closedSig:
		return ErrClosed
	}
}

// Next blocks until an order request is available or the queue has been
// closed and fully drained, in which case ok is false. This is the single
// consumer's only entry point; calling Next from more than one goroutine
// breaks the arrival-order guarantee the matching engine depends on.
func (q *Queue) Next() (req model.OrderRequest, ok bool) {
	select {
	case req := <-q.ch:
		return req, true
	case <-q.closedSig:
		select {
		case req := <-q.ch:
			return req, true
		default:
			return model.OrderRequest{}, false
		}
	}
}

// Close stops accepting further submissions. Idempotent. Already-queued
// items remain available to Next until drained.
func (q *Queue) Close() {
	q.closeOnce.Do(func() {
		close(q.closedSig)
	})
}
