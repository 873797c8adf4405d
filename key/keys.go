// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the SDK configuration schema.
const DefinedFieldsCount = 9

// Controls Auto-Hide - these keys govern the controls visibility state machine.
const (
	ControlsHideDelayMS = "controls.hide_delay_ms"
)

// Track Labeling - these keys configure how normalized tracks are rendered as display strings.
const (
	TracksLabelLanguage = "tracks.label_language"
	TracksShowBitrate   = "tracks.show_bitrate"
)

// Playback Stepping - these keys define the increments used by step-based volume/seek UI controls.
const (
	PlayerVolumeStep = "player.volume_step"
	PlayerSeekStep   = "player.seek_step"
)

// Diagnostics - these keys configure the persistence of SDK diagnostic logs.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// Command-Line Interface - these keys define the behavior of the playkit introspection CLI.
const (
	CliColored = "cli.colored"
)
