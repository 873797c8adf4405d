// Package engine defines the boundary toward the external, closed-source media playback engine.
//
// The engine itself (decoding, manifest parsing, adaptive bitrate logic, DRM) is a black-box
// collaborator; this package only describes the method/event surface the facade drives it through,
// mirroring how a JSON-IPC player backend is abstracted behind a narrow Go interface.
package engine

import (
	"github.com/samber/mo"

	"github.com/playkit-ui/playkit/playback"
)

// MediaConfig describes a single playable media source handed to the engine.
type MediaConfig struct {
	// Source is the manifest or media URL (e.g. an .mpd or .m3u8 address).
	Source string `json:"source" jsonschema:"description=Manifest or media URL to load."`
	// StartPosition is the initial playback position in seconds.
	StartPosition float64 `json:"start_position" jsonschema:"description=Initial playback position in seconds."`
	// Headers holds HTTP headers required to fetch the media.
	Headers map[string]string `json:"headers" jsonschema:"description=HTTP headers required to fetch the media."`
	// DRM holds opaque license-acquisition parameters forwarded verbatim to the engine.
	DRM map[string]string `json:"drm" jsonschema:"description=Opaque DRM license parameters forwarded to the engine."`
}

// Range is a seekable time window in seconds.
type Range struct {
	Start float64
	End   float64
}

// Engine encapsulates the required capabilities of the external playback engine.
//
// Command methods may block for one asynchronous round-trip. Seek completion is
// reported exclusively through EventSeekCompleted, and implementations must emit
// it unconditionally for every issued Seek, on success and on failure alike.
type Engine interface {
	// Load initializes playback of the given media configuration.
	Load(cfg MediaConfig) error

	// Play resumes or starts playback.
	Play() error

	// Pause suspends playback.
	Pause() error

	// Seek transitions the playback position to an absolute timestamp in seconds.
	Seek(seconds float64) error

	// Release unloads media and frees all engine resources. The engine must
	// accept a subsequent Load after Release.
	Release() error

	// Position retrieves the current absolute playback position in seconds.
	Position() float64

	// Duration retrieves the total temporal length of the active media in seconds.
	Duration() float64

	// SeekRange retrieves the currently seekable window.
	SeekRange() Range

	// Volume retrieves the current volume in the range [0, 1].
	Volume() float64

	// Muted retrieves the current mute state.
	Muted() bool

	// Paused retrieves the current suspension state.
	Paused() bool

	// Live reports whether the loaded media is a live stream.
	Live() bool

	// PlaybackRate retrieves the current playback rate multiplier.
	PlaybackRate() float64

	// State retrieves the engine's current playback state, normalized.
	State() playback.State

	// TrackManager retrieves the engine's track/rendition registry.
	TrackManager() TrackManager

	// SetVolume adjusts the volume in the range [0, 1].
	SetVolume(volume float64) error

	// SetMuted adjusts the mute state.
	SetMuted(muted bool) error

	// SetPlaybackRate adjusts the playback rate multiplier.
	SetPlaybackRate(rate float64) error

	// On registers a listener for a low-level engine event and returns a detach function.
	On(event Event, fn Listener) (detach func())
}

// Listener is the function signature for low-level engine event notifications.
// Payload shapes are dictated by the engine; see the Event constants.
type Listener func(data any)

// Factory constructs an engine instance bound to a host rendering element.
// The element handle is opaque to this SDK and passed through verbatim.
type Factory func(element any, base MediaConfig) (Engine, error)

// Handle is the explicit Uninitialized/Ready representation of the engine
// reference: mo.None before Init completes, mo.Some afterwards. Every facade
// operation pattern-matches on it instead of relying on nil-propagation.
type Handle = mo.Option[Engine]
