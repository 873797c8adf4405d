package track

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/playkit-ui/playkit/engine"
)

// fakeTrackManager is an in-memory engine.TrackManager for reconciliation tests.
type fakeTrackManager struct {
	renditions      []*engine.Rendition
	audios          []*engine.AudioTrack
	texts           []*engine.TextTrack
	activeRendition *engine.Rendition
	activeAudio     *engine.AudioTrack
	activeText      *engine.TextTrack
	auto            bool
}

func (f *fakeTrackManager) Renditions() []*engine.Rendition        { return f.renditions }
func (f *fakeTrackManager) AudioTracks() []*engine.AudioTrack      { return f.audios }
func (f *fakeTrackManager) TextTracks() []*engine.TextTrack        { return f.texts }
func (f *fakeTrackManager) ActiveRendition() *engine.Rendition     { return f.activeRendition }
func (f *fakeTrackManager) ActiveAudio() *engine.AudioTrack        { return f.activeAudio }
func (f *fakeTrackManager) ActiveText() *engine.TextTrack          { return f.activeText }
func (f *fakeTrackManager) AutoBitrateEnabled() bool               { return f.auto }
func (f *fakeTrackManager) SelectAudio(t *engine.AudioTrack) error { f.activeAudio = t; return nil }
func (f *fakeTrackManager) SelectText(t *engine.TextTrack) error   { f.activeText = t; return nil }
func (f *fakeTrackManager) ClearText() error                       { f.activeText = nil; return nil }

func (f *fakeTrackManager) SelectRendition(r *engine.Rendition) error {
	f.activeRendition = r
	f.auto = false
	return nil
}

func (f *fakeTrackManager) EnableAutoBitrate() error {
	f.auto = true
	return nil
}

func heights(tracks []Track) []int {
	out := make([]int, len(tracks))
	for i, t := range tracks {
		out[i] = t.Height
	}
	return out
}

func TestVideos(t *testing.T) {
	Convey("Videos", t, func() {
		r1080 := &engine.Rendition{ID: "r1", Height: 1080, Width: 1920, Bandwidth: 6_000_000}
		r720 := &engine.Rendition{ID: "r2", Height: 720, Width: 1280, Bandwidth: 3_000_000}
		r480 := &engine.Rendition{ID: "r3", Height: 480, Width: 854, Bandwidth: 1_000_000}

		Convey("Should synthesize a selected ABR entry when nothing is manually selected", func() {
			tm := &fakeTrackManager{renditions: []*engine.Rendition{r1080, r720, r480}, auto: true}

			tracks := Videos(tm)
			So(tracks, ShouldHaveLength, 4)

			// Synthetic ABR sorts first, concrete renditions by descending height.
			So(tracks[0].ID, ShouldEqual, IDAuto)
			So(tracks[0].Selected, ShouldBeTrue)
			So(heights(tracks), ShouldResemble, []int{0, 1080, 720, 480})
		})

		Convey("Should mark the manually selected rendition and not ABR", func() {
			tm := &fakeTrackManager{
				renditions:      []*engine.Rendition{r1080, r720, r480},
				activeRendition: r720,
			}

			tracks := Videos(tm)
			So(tracks[0].ID, ShouldEqual, IDAuto)
			So(tracks[0].Selected, ShouldBeFalse)

			selected := Find(tracks, "r2").MustGet()
			So(selected.Selected, ShouldBeTrue)
			So(selected.Native, ShouldEqual, r720)
		})

		Convey("Should ignore the active rendition while auto mode is on", func() {
			tm := &fakeTrackManager{
				renditions:      []*engine.Rendition{r1080, r720},
				activeRendition: r1080,
				auto:            true,
			}

			tracks := Videos(tm)
			So(tracks[0].ID, ShouldEqual, IDAuto)
			So(tracks[0].Selected, ShouldBeTrue)
			So(Find(tracks, "r1").MustGet().Selected, ShouldBeFalse)
		})

		Convey("Should filter out renditions lacking both height and width", func() {
			audioOnly := &engine.Rendition{ID: "a", Bandwidth: 128_000}
			tm := &fakeTrackManager{renditions: []*engine.Rendition{r720, audioOnly}}

			tracks := Videos(tm)
			So(tracks, ShouldHaveLength, 2)
			So(Find(tracks, "a").IsAbsent(), ShouldBeTrue)
		})

		Convey("Should produce nothing for an all-audio rendition list", func() {
			audioOnly := &engine.Rendition{ID: "a", Bandwidth: 128_000}
			tm := &fakeTrackManager{renditions: []*engine.Rendition{audioOnly}}

			So(Videos(tm), ShouldBeEmpty)
		})

		Convey("Should keep tracks unique by id", func() {
			dup := &engine.Rendition{ID: "r1", Height: 1080, Width: 1920, Bandwidth: 6_000_000}
			tm := &fakeTrackManager{renditions: []*engine.Rendition{r1080, dup, r720}}

			tracks := Videos(tm)
			So(tracks, ShouldHaveLength, 3)

			kept := Find(tracks, "r1").MustGet()
			So(kept.Native, ShouldEqual, r1080)
		})

		Convey("ID-less renditions synthesizing the same id should collapse to one", func() {
			a := &engine.Rendition{Height: 720, Width: 1280, Bandwidth: 1_000_000}
			b := &engine.Rendition{Height: 720, Width: 1280, Bandwidth: 1_000_000}
			tm := &fakeTrackManager{renditions: []*engine.Rendition{a, b}}

			tracks := Videos(tm)
			So(tracks, ShouldHaveLength, 2)

			ids := make(map[string]int)
			for _, t := range tracks {
				ids[t.ID]++
			}
			So(ids["1280x720@1000000"], ShouldEqual, 1)
			So(Find(tracks, "1280x720@1000000").MustGet().Native, ShouldEqual, a)
		})
	})
}

func TestTexts(t *testing.T) {
	Convey("Texts", t, func() {
		en := &engine.TextTrack{ID: "t1", Label: "English", Language: "en"}
		de := &engine.TextTrack{ID: "t2", Label: "Deutsch", Language: "de"}

		Convey("Should append a synthetic off entry, selected when nothing is active", func() {
			tm := &fakeTrackManager{texts: []*engine.TextTrack{en, de}}

			tracks := Texts(tm)
			So(tracks, ShouldHaveLength, 3)

			off := Find(tracks, OffID(TypeText)).MustGet()
			So(off.Selected, ShouldBeTrue)
			So(off.Synthetic(), ShouldBeTrue)
		})

		Convey("Off entry should be unselected when a track is active", func() {
			tm := &fakeTrackManager{texts: []*engine.TextTrack{en, de}, activeText: de}

			tracks := Texts(tm)
			So(Find(tracks, OffID(TypeText)).MustGet().Selected, ShouldBeFalse)
			So(Find(tracks, "t2").MustGet().Selected, ShouldBeTrue)
		})

		Convey("Empty engine list should stay empty, without a synthetic off", func() {
			So(Texts(&fakeTrackManager{}), ShouldBeEmpty)
		})

		Convey("Duplicate ids should keep their first occurrence", func() {
			dup := &engine.TextTrack{ID: "t1", Label: "English (CC)", Language: "en"}
			tm := &fakeTrackManager{texts: []*engine.TextTrack{en, dup}}

			tracks := Texts(tm)
			So(tracks, ShouldHaveLength, 2)
			So(Find(tracks, "t1").MustGet().Native, ShouldEqual, en)
		})
	})
}

func TestAudios(t *testing.T) {
	Convey("Audios", t, func() {
		fr := &engine.AudioTrack{ID: "a1", Label: "Français", Language: "fr"}
		en := &engine.AudioTrack{ID: "a2", Label: "English", Language: "en"}

		Convey("Should mark the engine-reported active track", func() {
			tm := &fakeTrackManager{audios: []*engine.AudioTrack{fr, en}, activeAudio: en}

			tracks := Audios(tm)
			So(tracks, ShouldHaveLength, 2)
			So(Find(tracks, "a2").MustGet().Selected, ShouldBeTrue)
			So(Find(tracks, "a1").MustGet().Selected, ShouldBeFalse)
		})

		Convey("Should sort by label", func() {
			tm := &fakeTrackManager{audios: []*engine.AudioTrack{fr, en}}

			tracks := Audios(tm)
			So(tracks[0].ID, ShouldEqual, "a2")
			So(tracks[1].ID, ShouldEqual, "a1")
		})

		Convey("Duplicate ids should keep their first occurrence", func() {
			dup := &engine.AudioTrack{ID: "a1", Label: "Français (AD)", Language: "fr"}
			tm := &fakeTrackManager{audios: []*engine.AudioTrack{fr, dup, en}}

			tracks := Audios(tm)
			So(tracks, ShouldHaveLength, 2)
			So(Find(tracks, "a1").MustGet().Native, ShouldEqual, fr)
		})
	})
}

func TestActives(t *testing.T) {
	Convey("Active track resolution", t, func() {
		r := &engine.Rendition{ID: "r1", Height: 720, Width: 1280}

		Convey("ActiveVideo should be synthetic ABR in auto mode", func() {
			tm := &fakeTrackManager{renditions: []*engine.Rendition{r}, activeRendition: r, auto: true}

			active := ActiveVideo(tm)
			So(active.ID, ShouldEqual, IDAuto)
			So(active.Selected, ShouldBeTrue)
			So(active.Synthetic(), ShouldBeTrue)
		})

		Convey("ActiveVideo should be the concrete rendition in manual mode", func() {
			tm := &fakeTrackManager{renditions: []*engine.Rendition{r}, activeRendition: r}

			active := ActiveVideo(tm)
			So(active.ID, ShouldEqual, "r1")
			So(active.Native, ShouldEqual, r)
		})

		Convey("ActiveVideo should fall back to the unavailable placeholder", func() {
			active := ActiveVideo(&fakeTrackManager{})
			So(active.ID, ShouldEqual, UnavailableID(TypeVideo))
			So(active.Selected, ShouldBeTrue)
		})

		Convey("ActiveAudio should fall back to the disabled entry", func() {
			active := ActiveAudio(&fakeTrackManager{})
			So(active.ID, ShouldEqual, OffID(TypeAudio))
			So(active.Selected, ShouldBeTrue)
		})

		Convey("ActiveText should fall back to the disabled entry", func() {
			active := ActiveText(&fakeTrackManager{})
			So(active.ID, ShouldEqual, OffID(TypeText))
			So(active.Selected, ShouldBeTrue)
		})
	})
}

func TestChanged(t *testing.T) {
	Convey("Changed", t, func() {
		r := &engine.Rendition{ID: "r1", Height: 720}
		a := Track{ID: "r1", Type: TypeVideo, Native: r, Selected: false}
		abr := Track{ID: IDAuto, Type: TypeVideo, Selected: true}

		Convey("Identical recomputation should not be a change", func() {
			So(Changed([]Track{abr, a}, []Track{abr, a}), ShouldBeFalse)
		})

		Convey("Order is irrelevant under the tuple-set rule", func() {
			So(Changed([]Track{abr, a}, []Track{a, abr}), ShouldBeFalse)
		})

		Convey("A flipped selected flag is a change", func() {
			b := a
			b.Selected = true
			So(Changed([]Track{abr, a}, []Track{abr, b}), ShouldBeTrue)
		})

		Convey("A different native identity is a change", func() {
			b := a
			b.Native = &engine.Rendition{ID: "r1", Height: 720}
			So(Changed([]Track{abr, a}, []Track{abr, b}), ShouldBeTrue)
		})

		Convey("Length difference is a change", func() {
			So(Changed([]Track{abr}, []Track{abr, a}), ShouldBeTrue)
			So(Changed(nil, []Track{abr}), ShouldBeTrue)
		})

		Convey("Empty against empty is not a change", func() {
			So(Changed(nil, nil), ShouldBeFalse)
		})
	})
}
