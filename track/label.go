// Package track converts engine-native track and rendition objects into the normalized UI track model.
package track

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/playkit-ui/playkit/key"
)

// Labeler resolves the display label for a normalized track. Implementations
// must be pure: same track in, same label out.
type Labeler func(t Track) string

// NewLabeler returns the default labeling policy:
//   - the ABR track is labeled "Auto", suffixed with the currently playing
//     rendition's vertical resolution in parentheses when known;
//   - disabled tracks are labeled "Off", unavailable placeholders "None";
//   - video tracks are labeled "<height>p", with the bitrate in Mbps appended
//     when configured;
//   - audio/text tracks use their own label when present, else the display
//     name of their language code, else "Unknown".
//
// playingHeight reports the vertical resolution of the rendition currently
// being played, or 0 when unknown; it is consulted lazily on every resolution.
func NewLabeler(playingHeight func() int) Labeler {
	return func(t Track) string {
		switch t.ID {
		case IDAuto:
			if h := playingHeight(); h > 0 {
				return fmt.Sprintf("Auto (%dp)", h)
			}
			return "Auto"
		case OffID(t.Type):
			return "Off"
		case UnavailableID(t.Type):
			return "None"
		}

		if t.Type == TypeVideo {
			label := fmt.Sprintf("%dp", t.Height)
			if viper.GetBool(key.TracksShowBitrate) && t.Bandwidth > 0 {
				label += fmt.Sprintf(" (%.1f Mbps)", float64(t.Bandwidth)/1e6)
			}
			return label
		}

		if t.Label != "" {
			return t.Label
		}

		return LanguageName(t.Language)
	}
}

// LanguageName resolves a two/three-letter language code to a display name,
// stripping region and script variants. The name is rendered in the
// language's own tongue or in English depending on configuration. Unresolvable
// codes yield "Unknown".
func LanguageName(code string) string {
	if code == "" {
		return "Unknown"
	}

	tag, err := language.Parse(code)
	if err != nil {
		return "Unknown"
	}

	// Reduce pt-BR / zh-Hans style variants to their base language.
	if base, conf := tag.Base(); conf != language.No {
		tag = language.Make(base.String())
	}

	var namer display.Namer
	if strings.EqualFold(viper.GetString(key.TracksLabelLanguage), "native") {
		namer = display.Self
	} else {
		namer = display.English.Languages()
	}

	if name := namer.Name(tag); name != "" {
		return name
	}
	return "Unknown"
}

// Apply resolves and assigns labels for every track in the list.
func Apply(tracks []Track, label Labeler) {
	if label == nil {
		return
	}
	for i := range tracks {
		tracks[i].Label = label(tracks[i])
	}
}
