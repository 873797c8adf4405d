// Package event provides a minimal generic publish/subscribe primitive for typed event channels.
package event

import "sync"

// Subscription identifies a registered listener so it can be detached later.
// The zero value is not a valid subscription.
type Subscription[K comparable] struct {
	key K
	id  uint64
}

// listener couples a callback with its registration identity and one-shot flag.
type listener[P any] struct {
	id   uint64
	fn   func(P)
	once bool
}

// Emitter dispatches typed payloads to listeners registered per key.
// Dispatch is synchronous and follows registration order within a key; no
// ordering guarantee exists between different keys. Listener panics are not
// recovered and propagate to the caller of Emit.
//
// Safe for concurrent use: engine callbacks may arrive on arbitrary goroutines.
type Emitter[K comparable, P any] struct {
	mu        sync.Mutex
	nextID    uint64
	listeners map[K][]listener[P]
}

// New creates an empty emitter.
func New[K comparable, P any]() *Emitter[K, P] {
	return &Emitter[K, P]{
		listeners: make(map[K][]listener[P]),
	}
}

// On registers a listener for the given key and returns its subscription handle.
func (e *Emitter[K, P]) On(key K, fn func(P)) Subscription[K] {
	return e.register(key, fn, false)
}

// One registers a listener that automatically deregisters after its first invocation.
func (e *Emitter[K, P]) One(key K, fn func(P)) Subscription[K] {
	return e.register(key, fn, true)
}

func (e *Emitter[K, P]) register(key K, fn func(P), once bool) Subscription[K] {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.nextID++
	e.listeners[key] = append(e.listeners[key], listener[P]{id: e.nextID, fn: fn, once: once})
	return Subscription[K]{key: key, id: e.nextID}
}

// Off removes a previously registered listener. Detaching an unknown or
// already-removed subscription is a no-op, not an error.
func (e *Emitter[K, P]) Off(sub Subscription[K]) {
	e.mu.Lock()
	defer e.mu.Unlock()

	regs := e.listeners[sub.key]
	for i, l := range regs {
		if l.id == sub.id {
			e.listeners[sub.key] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// Emit synchronously invokes all listeners currently registered for key, in
// registration order, each with the same payload value. One-shot listeners
// are deregistered before invocation so re-entrant emits cannot double-fire them.
func (e *Emitter[K, P]) Emit(key K, payload P) {
	e.mu.Lock()
	regs := e.listeners[key]
	batch := make([]listener[P], len(regs))
	copy(batch, regs)

	remaining := regs[:0:0]
	for _, l := range regs {
		if !l.once {
			remaining = append(remaining, l)
		}
	}
	e.listeners[key] = remaining
	e.mu.Unlock()

	for _, l := range batch {
		l.fn(payload)
	}
}

// Len reports the number of listeners currently registered for key.
func (e *Emitter[K, P]) Len(key K) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.listeners[key])
}
