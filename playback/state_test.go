package playback

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestState(t *testing.T) {
	Convey("State", t, func() {
		Convey("String should cover every defined state", func() {
			So(Unset.String(), ShouldEqual, "unset")
			So(Idle.String(), ShouldEqual, "idle")
			So(Preparing.String(), ShouldEqual, "preparing")
			So(Buffering.String(), ShouldEqual, "buffering")
			So(Playing.String(), ShouldEqual, "playing")
			So(Paused.String(), ShouldEqual, "paused")
			So(Ended.String(), ShouldEqual, "ended")
			So(Error.String(), ShouldEqual, "error")
		})

		Convey("Enabled should be false only for Unset, Idle and Error", func() {
			So(Unset.Enabled(), ShouldBeFalse)
			So(Idle.Enabled(), ShouldBeFalse)
			So(Error.Enabled(), ShouldBeFalse)

			So(Preparing.Enabled(), ShouldBeTrue)
			So(Buffering.Enabled(), ShouldBeTrue)
			So(Playing.Enabled(), ShouldBeTrue)
			So(Paused.Enabled(), ShouldBeTrue)
			So(Ended.Enabled(), ShouldBeTrue)
		})
	})
}
