package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		Convey("Should order semantic versions", func() {
			order, err := Compare("1.2.3", "1.2.4")
			So(err, ShouldBeNil)
			So(order, ShouldEqual, -1)

			order, err = Compare("2.0.0", "1.9.9")
			So(err, ShouldBeNil)
			So(order, ShouldEqual, 1)

			order, err = Compare("0.1.0", "0.1.0")
			So(err, ShouldBeNil)
			So(order, ShouldEqual, 0)
		})

		Convey("Should accept a v prefix", func() {
			order, err := Compare("v1.0.0", "1.0.0")
			So(err, ShouldBeNil)
			So(order, ShouldEqual, 0)
		})

		Convey("Should reject malformed versions", func() {
			_, err := Compare("not-a-version", "1.0.0")
			So(err, ShouldNotBeNil)
		})
	})
}
