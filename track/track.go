// Package track converts engine-native track and rendition objects into the normalized UI track model.
package track

import "github.com/samber/mo"

// Type discriminates the three selectable media stream families.
type Type string

const (
	TypeVideo Type = "video"
	TypeAudio Type = "audio"
	TypeText  Type = "text"
)

// IDAuto is the reserved identifier of the synthetic automatic-bitrate track.
const IDAuto = "abr"

// OffID returns the reserved identifier of the synthetic disabled track for a type.
func OffID(t Type) string {
	return string(t) + "-off"
}

// UnavailableID returns the reserved identifier of the synthetic placeholder
// track used when a type has nothing to offer.
func UnavailableID(t Type) string {
	return string(t) + "-unavailable"
}

// Track is the normalized representation of a selectable media stream.
//
// Native is an opaque reference to the engine-owned track/rendition object;
// it is never compared by value, only by identity, and is nil for synthetic
// entries (auto/ABR, off, unavailable).
type Track struct {
	ID        string
	Type      Type
	Label     string
	Language  string
	Height    int
	Width     int
	Bandwidth int
	Selected  bool
	Native    any
}

// Synthetic reports whether the track was synthesized by the facade rather
// than backed by an engine object.
func (t Track) Synthetic() bool {
	return t.Native == nil
}

// identity is the tuple that defines track equality for change detection.
type identity struct {
	typ      Type
	native   any
	selected bool
	id       string
}

func (t Track) identity() identity {
	return identity{typ: t.Type, native: t.Native, selected: t.Selected, id: t.ID}
}

// Same reports whether two tracks are equal under the identity rule:
// same type, same native object identity, same selected flag, same id.
func (t Track) Same(other Track) bool {
	return t.identity() == other.identity()
}

// Changed reports whether a recomputed list differs from the previously
// published one by identity tuple-set. It gates publication of *TracksAvailable
// UI events so click-driven re-queries that reach the same conclusion do not
// trigger redundant re-renders.
func Changed(previous, next []Track) bool {
	if len(previous) != len(next) {
		return true
	}

	seen := make(map[identity]int, len(previous))
	for _, t := range previous {
		seen[t.identity()]++
	}
	for _, t := range next {
		seen[t.identity()]--
		if seen[t.identity()] < 0 {
			return true
		}
	}
	return false
}

// Find locates a track by id within a list.
func Find(list []Track, id string) mo.Option[Track] {
	for _, t := range list {
		if t.ID == id {
			return mo.Some(t)
		}
	}
	return mo.None[Track]()
}
