// Package track converts engine-native track and rendition objects into the normalized UI track model.
package track

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/playkit-ui/playkit/engine"
)

// FromRendition normalizes an engine rendition into a video track. The
// rendition pointer is retained as the track's native handle.
func FromRendition(r *engine.Rendition, selected bool) Track {
	id := r.ID
	if id == "" {
		id = fmt.Sprintf("%dx%d@%d", r.Width, r.Height, r.Bandwidth)
	}

	return Track{
		ID:        id,
		Type:      TypeVideo,
		Height:    r.Height,
		Width:     r.Width,
		Bandwidth: r.Bandwidth,
		Selected:  selected,
		Native:    r,
	}
}

// fromAudio normalizes an engine audio track.
func fromAudio(t *engine.AudioTrack, selected bool) Track {
	return Track{
		ID:       t.ID,
		Type:     TypeAudio,
		Label:    t.Label,
		Language: t.Language,
		Selected: selected,
		Native:   t,
	}
}

// fromText normalizes an engine text track.
func fromText(t *engine.TextTrack, selected bool) Track {
	return Track{
		ID:       t.ID,
		Type:     TypeText,
		Label:    t.Label,
		Language: t.Language,
		Selected: selected,
		Native:   t,
	}
}

// byID is the de-duplication key: within a published list tracks are unique
// by id, first occurrence kept.
func byID(t Track) string {
	return t.ID
}

// Videos produces the ordered video track list.
//
// Renditions lacking both height and width (audio-only variants) are filtered
// out. Renditions resolving to the same id (including ids synthesized from
// dimensions and bandwidth) keep their first occurrence. A non-empty list
// without an explicit ABR entry gets a synthetic one, selected iff no
// concrete rendition is manually selected.
func Videos(tm engine.TrackManager) []Track {
	renditions := lo.Filter(tm.Renditions(), func(r *engine.Rendition, _ int) bool {
		return r.Height > 0 || r.Width > 0
	})
	if len(renditions) == 0 {
		return nil
	}

	auto := tm.AutoBitrateEnabled()
	active := tm.ActiveRendition()

	tracks := make([]Track, 0, len(renditions)+1)
	manual := false
	for _, r := range renditions {
		selected := !auto && r == active
		manual = manual || selected
		tracks = append(tracks, FromRendition(r, selected))
	}

	tracks = lo.UniqBy(tracks, byID)

	if Find(tracks, IDAuto).IsAbsent() {
		tracks = append(tracks, Track{ID: IDAuto, Type: TypeVideo, Selected: !manual})
	}

	Sort(tracks)
	return tracks
}

// Audios produces the ordered audio track list. The engine-reported active
// track is marked selected; duplicate ids keep their first occurrence.
func Audios(tm engine.TrackManager) []Track {
	active := tm.ActiveAudio()

	tracks := lo.Map(tm.AudioTracks(), func(t *engine.AudioTrack, _ int) Track {
		return fromAudio(t, t == active)
	})
	tracks = lo.UniqBy(tracks, byID)

	Sort(tracks)
	return tracks
}

// Texts produces the ordered text track list. A non-empty list without an
// explicit off entry gets a synthetic one appended, selected iff no concrete
// text track is active. Duplicate ids keep their first occurrence.
func Texts(tm engine.TrackManager) []Track {
	active := tm.ActiveText()

	tracks := lo.Map(tm.TextTracks(), func(t *engine.TextTrack, _ int) Track {
		return fromText(t, t == active)
	})
	tracks = lo.UniqBy(tracks, byID)

	if len(tracks) > 0 && Find(tracks, OffID(TypeText)).IsAbsent() {
		tracks = append(tracks, Track{ID: OffID(TypeText), Type: TypeText, Selected: active == nil})
	}

	Sort(tracks)
	return tracks
}

// ActiveVideo resolves the single active video track: the synthetic ABR entry
// while automatic bitrate selection is enabled, the concrete active rendition
// otherwise, and a synthetic unavailable placeholder when the engine reports
// neither.
func ActiveVideo(tm engine.TrackManager) Track {
	if tm.AutoBitrateEnabled() {
		return Track{ID: IDAuto, Type: TypeVideo, Selected: true}
	}

	if r := tm.ActiveRendition(); r != nil {
		return FromRendition(r, true)
	}

	return Track{ID: UnavailableID(TypeVideo), Type: TypeVideo, Selected: true}
}

// ActiveAudio resolves the single active audio track, falling back to the
// synthetic disabled entry when the engine reports none.
func ActiveAudio(tm engine.TrackManager) Track {
	if t := tm.ActiveAudio(); t != nil {
		return fromAudio(t, true)
	}
	return Track{ID: OffID(TypeAudio), Type: TypeAudio, Selected: true}
}

// ActiveText resolves the single active text track, falling back to the
// synthetic disabled entry when subtitles are off.
func ActiveText(tm engine.TrackManager) Track {
	if t := tm.ActiveText(); t != nil {
		return fromText(t, true)
	}
	return Track{ID: OffID(TypeText), Type: TypeText, Selected: true}
}
