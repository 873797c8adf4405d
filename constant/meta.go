// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Playkit is the canonical application identifier used for filesystem paths and CLI branding.
	Playkit = "playkit"

	// Version is the current SDK semantic version string.
	Version = "0.1.0"
)

// Build metadata, overridden at link time.
var (
	Revision = "unknown"
	BuiltAt  = ""
)
