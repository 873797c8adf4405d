// Package ui defines the normalized event catalogue emitted by the player facade toward presentational components.
package ui

import (
	"github.com/playkit-ui/playkit/playback"
	"github.com/playkit-ui/playkit/track"
)

// Kind identifies a channel of the UI event catalogue.
type Kind string

const (
	KindStateChanged            Kind = "statechanged"
	KindPosition                Kind = "positionchanged"
	KindDurationChanged         Kind = "durationchanged"
	KindVolumeChanged           Kind = "volumechanged"
	KindMutedChanged            Kind = "mutedchanged"
	KindRateChanged             Kind = "ratechanged"
	KindVideoTrackChanged       Kind = "videotrackchanged"
	KindAudioTrackChanged       Kind = "audiotrackchanged"
	KindTextTrackChanged        Kind = "texttrackchanged"
	KindVideoTracksAvailable    Kind = "videotracksavailable"
	KindAudioTracksAvailable    Kind = "audiotracksavailable"
	KindTextTracksAvailable     Kind = "texttracksavailable"
	KindPlayingRenditionChanged Kind = "playingrenditionchanged"
	KindHoverPosition           Kind = "hoverposition"
	KindControlsVisibility      Kind = "controlsvisibility"
	KindMenuVisibility          Kind = "menuvisibility"
	KindSurfaceInteraction      Kind = "surfaceinteraction"
)

// Event is the closed tagged union of everything the facade can emit.
// Consumers switch on the concrete payload type rather than inspecting
// stringly-typed data.
type Event interface {
	Kind() Kind
}

// StateChanged reports a normalized playback state transition.
type StateChanged struct {
	State playback.State
}

// Position reports the externally observable playback position in seconds.
// While a user seek is in flight it carries the seek target, not the engine's
// lagging live position.
type Position struct {
	Seconds float64
}

// DurationChanged reports the media duration in seconds.
type DurationChanged struct {
	Seconds float64
}

// VolumeChanged reports the volume in the range [0, 1].
type VolumeChanged struct {
	Volume float64
}

// MutedChanged reports the mute state.
type MutedChanged struct {
	Muted bool
}

// RateChanged reports the playback rate multiplier.
type RateChanged struct {
	Rate float64
}

// VideoTrackChanged reports a new active video track.
type VideoTrackChanged struct {
	Track track.Track
}

// AudioTrackChanged reports a new active audio track.
type AudioTrackChanged struct {
	Track track.Track
}

// TextTrackChanged reports a new active text track.
type TextTrackChanged struct {
	Track track.Track
}

// VideoTracksAvailable publishes a recomputed video track list.
type VideoTracksAvailable struct {
	Tracks []track.Track
}

// AudioTracksAvailable publishes a recomputed audio track list.
type AudioTracksAvailable struct {
	Tracks []track.Track
}

// TextTracksAvailable publishes a recomputed text track list.
type TextTracksAvailable struct {
	Tracks []track.Track
}

// PlayingRenditionChanged reports the rendition the adaptive bitrate logic
// switched to while in automatic mode.
type PlayingRenditionChanged struct {
	Track track.Track
}

// HoverPosition reports the media position under the pointer on the scrub bar.
type HoverPosition struct {
	Seconds float64
}

// ControlsVisibility reports the externally observable controls visibility.
type ControlsVisibility struct {
	Visible bool
}

// MenuVisibility reports whether the slide-in menu is open.
type MenuVisibility struct {
	Visible bool
}

// SurfaceInteraction reports a generic user interaction with the player surface.
type SurfaceInteraction struct{}

func (StateChanged) Kind() Kind            { return KindStateChanged }
func (Position) Kind() Kind                { return KindPosition }
func (DurationChanged) Kind() Kind         { return KindDurationChanged }
func (VolumeChanged) Kind() Kind           { return KindVolumeChanged }
func (MutedChanged) Kind() Kind            { return KindMutedChanged }
func (RateChanged) Kind() Kind             { return KindRateChanged }
func (VideoTrackChanged) Kind() Kind       { return KindVideoTrackChanged }
func (AudioTrackChanged) Kind() Kind       { return KindAudioTrackChanged }
func (TextTrackChanged) Kind() Kind        { return KindTextTrackChanged }
func (VideoTracksAvailable) Kind() Kind    { return KindVideoTracksAvailable }
func (AudioTracksAvailable) Kind() Kind    { return KindAudioTracksAvailable }
func (TextTracksAvailable) Kind() Kind     { return KindTextTracksAvailable }
func (PlayingRenditionChanged) Kind() Kind { return KindPlayingRenditionChanged }
func (HoverPosition) Kind() Kind           { return KindHoverPosition }
func (ControlsVisibility) Kind() Kind      { return KindControlsVisibility }
func (MenuVisibility) Kind() Kind          { return KindMenuVisibility }
func (SurfaceInteraction) Kind() Kind      { return KindSurfaceInteraction }
