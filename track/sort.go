// Package track converts engine-native track and rendition objects into the normalized UI track model.
package track

import (
	"strings"
	"sync"

	"golang.org/x/exp/slices"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collator performs locale-aware label comparison. Collators are not safe for
// concurrent use, so access is serialized.
var (
	collatorMu sync.Mutex
	collator   = collate.New(language.Und, collate.Loose)
)

func compareLabels(a, b string) int {
	collatorMu.Lock()
	defer collatorMu.Unlock()
	return collator.CompareString(a, b)
}

// Sort orders a track list deterministically, in place:
// synthetic tracks (no native handle) first, video tracks by descending
// height, then locale-aware label comparison, then language code.
// Equal or incomparable pairs keep their relative order.
func Sort(tracks []Track) {
	slices.SortStableFunc(tracks, Compare)
}

// Compare is the ordering function behind Sort. It returns a negative value
// when a sorts before b, positive when after, and zero when incomparable.
func Compare(a, b Track) int {
	if a.Synthetic() != b.Synthetic() {
		if a.Synthetic() {
			return -1
		}
		return 1
	}

	if a.Type == TypeVideo && b.Type == TypeVideo && a.Height != b.Height {
		return b.Height - a.Height
	}

	if c := compareLabels(a.Label, b.Label); c != 0 {
		return c
	}

	return strings.Compare(a.Language, b.Language)
}
