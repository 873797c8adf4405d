// Package playback defines the normalized playback state model shared by the facade and UI components.
package playback

// State represents the normalized playback lifecycle state reported to UI components.
type State int

const (
	// Unset is the only legal initial state, before any engine attaches.
	Unset State = iota
	// Idle follows a release; media must be reloaded to leave it.
	Idle
	// Preparing covers configuration load up to the first engine-driven state.
	Preparing
	// Buffering indicates stalled playback while the engine fills its buffers.
	Buffering
	// Playing indicates active playback.
	Playing
	// Paused indicates suspended playback with loaded media.
	Paused
	// Ended indicates playback ran to completion; an explicit reload is required to leave it.
	Ended
	// Error is terminal until an explicit reload.
	Error
)

// String returns the lowercase string representation of the state.
func (s State) String() string {
	switch s {
	case Unset:
		return "unset"
	case Idle:
		return "idle"
	case Preparing:
		return "preparing"
	case Buffering:
		return "buffering"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Ended:
		return "ended"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Enabled reports whether UI controls should be interactive in this state.
// It is false for Unset, Idle and Error.
func (s State) Enabled() bool {
	switch s {
	case Unset, Idle, Error:
		return false
	default:
		return true
	}
}
