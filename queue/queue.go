// Package queue implements a FIFO queue of deferred asynchronous actions gated on engine readiness.
package queue

import (
	"sync"

	"github.com/playkit-ui/playkit/log"
)

// Action is a deferred unit of work, consumed exactly once.
type Action func() error

// Queue defers engine-dependent actions submitted before the engine exists and
// replays them strictly in FIFO submission order once it does.
//
// Before Open, Submit appends to the queue. Open drains the queue sequentially,
// each action completing before the next starts, then closes the Ready channel.
// After the drain, Submit executes actions immediately, bypassing the queue.
type Queue struct {
	mu      sync.Mutex
	pending []Action
	opening bool
	open    bool
	ready   chan struct{}
}

// New creates an empty, closed queue.
func New() *Queue {
	return &Queue{
		ready: make(chan struct{}),
	}
}

// Submit either runs the action immediately (queue open) or appends it for the
// drain (queue closed). The returned error is the action's own error when run
// immediately, and always nil when the action was deferred; errors of deferred
// actions are logged during the drain instead.
func (q *Queue) Submit(a Action) error {
	q.mu.Lock()
	if !q.open {
		q.pending = append(q.pending, a)
		q.mu.Unlock()
		return nil
	}
	q.mu.Unlock()

	return a()
}

// Open drains all pending actions in FIFO order, each awaited to completion
// before the next starts, then marks the queue open and closes Ready.
// Actions submitted while the drain is running join the tail of the drain.
// Calling Open on an open or draining queue is a no-op.
func (q *Queue) Open() {
	q.mu.Lock()
	if q.open || q.opening {
		q.mu.Unlock()
		return
	}
	q.opening = true
	q.mu.Unlock()

	for {
		q.mu.Lock()
		if len(q.pending) == 0 {
			q.open = true
			q.opening = false
			close(q.ready)
			q.mu.Unlock()
			return
		}
		next := q.pending[0]
		q.pending = q.pending[1:]
		q.mu.Unlock()

		if err := next(); err != nil {
			log.Warnf("queued action failed: %v", err)
		}
	}
}

// Ready returns a channel that is closed once the queue has fully drained.
func (q *Queue) Ready() <-chan struct{} {
	return q.ready
}

// IsOpen reports whether the queue has drained and now executes submissions immediately.
func (q *Queue) IsOpen() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.open
}

// Len reports the number of actions still waiting for the drain.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
