package track

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSort(t *testing.T) {
	Convey("Sort", t, func() {
		native := struct{ tag string }{"n"}

		Convey("Synthetic tracks should sort before native-backed ones", func() {
			tracks := []Track{
				{ID: "r1", Type: TypeVideo, Height: 1080, Native: &native},
				{ID: IDAuto, Type: TypeVideo},
			}

			Sort(tracks)
			So(tracks[0].ID, ShouldEqual, IDAuto)
		})

		Convey("Video tracks should sort by descending height", func() {
			tracks := []Track{
				{ID: "r480", Type: TypeVideo, Height: 480, Native: &native},
				{ID: "r1080", Type: TypeVideo, Height: 1080, Native: &native},
				{ID: "r720", Type: TypeVideo, Height: 720, Native: &native},
			}

			Sort(tracks)
			So(tracks[0].ID, ShouldEqual, "r1080")
			So(tracks[1].ID, ShouldEqual, "r720")
			So(tracks[2].ID, ShouldEqual, "r480")
		})

		Convey("Non-video tracks should sort by label, then language", func() {
			tracks := []Track{
				{ID: "a2", Type: TypeAudio, Label: "English", Language: "en", Native: &native},
				{ID: "a1", Type: TypeAudio, Label: "Deutsch", Language: "de", Native: &native},
				{ID: "a3", Type: TypeAudio, Label: "Deutsch", Language: "at", Native: &native},
			}

			Sort(tracks)
			So(tracks[0].ID, ShouldEqual, "a3")
			So(tracks[1].ID, ShouldEqual, "a1")
			So(tracks[2].ID, ShouldEqual, "a2")
		})

		Convey("Equal pairs should keep their relative order", func() {
			first := &struct{ n int }{1}
			second := &struct{ n int }{2}
			tracks := []Track{
				{ID: "t1", Type: TypeText, Label: "English", Language: "en", Native: first},
				{ID: "t2", Type: TypeText, Label: "English", Language: "en", Native: second},
			}

			Sort(tracks)
			So(tracks[0].ID, ShouldEqual, "t1")
			So(tracks[1].ID, ShouldEqual, "t2")
		})
	})
}
