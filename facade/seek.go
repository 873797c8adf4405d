// Package facade exposes the player facade that UI components interact with instead of the raw engine.
package facade

import "sync"

// seeker resolves overlapping user seek requests against asynchronous engine
// seek completion and ongoing time updates.
//
// The engine's own seek reports lag real time by one async round-trip, so
// rapid scrubbing must not queue stale seeks: at most one engine seek command
// is in flight at any time, and newer targets supersede older ones
// (last write wins). Superseded targets are re-issued after the in-flight
// command completes, never cancelled.
type seeker struct {
	mu       sync.Mutex
	seeking  bool
	target   float64
	inFlight float64

	// command issues a single engine seek; completion arrives via Complete.
	command func(seconds float64)
	// publish emits the position UI event.
	publish func(seconds float64)
	// live reads the engine's current playback position.
	live func() float64
}

// Request handles a user seek toward target. While idle it issues the engine
// command and optimistically publishes the target before the engine confirms.
// While a command is in flight it only updates the stored target and
// re-publishes; no second command is issued.
func (s *seeker) Request(target float64) {
	s.mu.Lock()
	if s.seeking {
		s.target = target
		s.mu.Unlock()
		s.publish(target)
		return
	}

	s.seeking = true
	s.target = target
	s.inFlight = target
	s.mu.Unlock()

	s.publish(target)
	s.command(target)
}

// Complete handles engine seek completion, successful or not. When a newer
// target arrived while the command was in flight, the now-current target is
// re-issued immediately; otherwise the coordinator returns to idle and
// publishes the engine's authoritative reported position.
//
// Convergence: each re-issue consumes the latest stored target, so a finite
// number of requests yields a finite chain of commands.
func (s *seeker) Complete(reported float64) {
	s.mu.Lock()
	if !s.seeking {
		s.mu.Unlock()
		return
	}

	if s.target != s.inFlight {
		next := s.target
		s.inFlight = next
		s.mu.Unlock()

		s.command(next)
		return
	}

	s.seeking = false
	s.mu.Unlock()

	s.publish(reported)
}

// Position returns the stored target while a user seek is in flight, so rapid
// UI reads reflect user intent instead of engine lag; otherwise the engine's
// live position.
func (s *seeker) Position() float64 {
	s.mu.Lock()
	if s.seeking {
		defer s.mu.Unlock()
		return s.target
	}
	s.mu.Unlock()

	return s.live()
}

// UserSeeking reports whether a user-initiated seek is unresolved.
func (s *seeker) UserSeeking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seeking
}

// Reset drops any in-flight bookkeeping. Called on release.
func (s *seeker) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seeking = false
	s.target = 0
	s.inFlight = 0
}
