// Package engine defines the boundary toward the external, closed-source media playback engine.
package engine

import "github.com/playkit-ui/playkit/playback"

// Event identifies a low-level engine event channel.
type Event string

// Low-Level Engine Events - names follow the engine's own wire vocabulary; the
// facade translates every one of them into the normalized UI event catalogue.
const (
	EventStateChanged      Event = "statechanged"
	EventTracksAdded       Event = "tracksadded"
	EventAudioTrackChanged Event = "audiotrackchanged"
	EventVideoTrackChanged Event = "videotrackchanged"
	EventTextTrackChanged  Event = "texttrackchanged"
	EventBitrateChanged    Event = "bitratechanged"
	EventTimeUpdate        Event = "timeupdate"
	EventRateChange        Event = "ratechange"
	EventDurationChange    Event = "durationchange"
	EventVolumeChange      Event = "volumechange"
	EventSeekCompleted     Event = "seekcompleted"
)

// StateChange is the payload of EventStateChanged.
type StateChange struct {
	State playback.State
}

// TimeUpdate is the payload of EventTimeUpdate.
type TimeUpdate struct {
	Position float64
}

// DurationChange is the payload of EventDurationChange.
type DurationChange struct {
	Duration float64
}

// VolumeChange is the payload of EventVolumeChange.
type VolumeChange struct {
	Volume float64
	Muted  bool
}

// RateChange is the payload of EventRateChange.
type RateChange struct {
	Rate float64
}

// BitrateChange is the payload of EventBitrateChanged. Rendition is the
// quality variant the adaptive bitrate logic switched to.
type BitrateChange struct {
	Rendition *Rendition
}

// SeekCompleted is the payload of EventSeekCompleted. Position is the
// engine's authoritative post-seek position; OK is false when the seek failed.
type SeekCompleted struct {
	Position float64
	OK       bool
}
