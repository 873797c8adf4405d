// Package engine defines the boundary toward the external, closed-source media playback engine.
package engine

// Rendition is one concrete quality variant of the video stream.
// Instances are owned by the engine; the facade compares them by identity only.
type Rendition struct {
	ID        string
	Height    int
	Width     int
	Bandwidth int
}

// AudioTrack is an engine-native selectable audio stream.
type AudioTrack struct {
	ID       string
	Label    string
	Language string
}

// TextTrack is an engine-native selectable subtitle/caption stream.
type TextTrack struct {
	ID       string
	Label    string
	Language string
}

// TrackManager encapsulates the engine's track/rendition registry and selection surface.
//
// Listing methods return engine-owned pointers; callers must treat them as
// read-only and compare them by identity, never by value.
type TrackManager interface {
	// Renditions lists all video quality variants of the loaded media.
	Renditions() []*Rendition

	// AudioTracks lists all selectable audio streams.
	AudioTracks() []*AudioTrack

	// TextTracks lists all selectable subtitle/caption streams.
	TextTracks() []*TextTrack

	// ActiveRendition retrieves the rendition currently being played, or nil.
	// In automatic bitrate mode this is the variant the engine chose.
	ActiveRendition() *Rendition

	// ActiveAudio retrieves the currently selected audio track, or nil.
	ActiveAudio() *AudioTrack

	// ActiveText retrieves the currently selected text track, or nil when
	// subtitles are disabled.
	ActiveText() *TextTrack

	// AutoBitrateEnabled reports whether automatic quality selection is active.
	AutoBitrateEnabled() bool

	// SelectRendition pins playback to a concrete rendition, disabling
	// automatic bitrate selection.
	SelectRendition(r *Rendition) error

	// SelectAudio switches to the given audio track.
	SelectAudio(t *AudioTrack) error

	// SelectText switches to the given text track.
	SelectText(t *TextTrack) error

	// ClearText disables subtitle rendering.
	ClearText() error

	// EnableAutoBitrate clears any manual rendition selection and re-enables
	// automatic quality selection.
	EnableAutoBitrate() error
}
