package status

import (
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLine(t *testing.T) {
	Convey("Given a status line with a 4 second timeout", t, func() {
		l := New(4 * time.Second)
		start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

		Convey("It starts empty", func() {
			So(l.Text(start), ShouldEqual, "")
			So(l.IsError(start), ShouldBeFalse)
		})

		Convey("A notice shows until the timeout", func() {
			l.Notice("Readout copied to clipboard", start)
			So(l.Text(start), ShouldEqual, "Readout copied to clipboard")
			So(l.Text(start.Add(3*time.Second)), ShouldEqual, "Readout copied to clipboard")
			So(l.Text(start.Add(4*time.Second)), ShouldEqual, "")
			So(l.Text(start.Add(time.Minute)), ShouldEqual, "")
		})

		Convey("An error expires the same way", func() {
			l.Error(errors.New("clipboard unavailable"), start)
			So(l.Text(start), ShouldEqual, "Error: clipboard unavailable")
			So(l.IsError(start), ShouldBeTrue)
			So(l.IsError(start.Add(5*time.Second)), ShouldBeFalse)
		})

		Convey("A nil error leaves the line alone", func() {
			l.Notice("saved", start)
			l.Error(nil, start)
			So(l.Text(start), ShouldEqual, "saved")
		})

		Convey("A later success replaces an error and restarts the timer", func() {
			l.Error(errors.New("audio monitor unavailable"), start)
			later := start.Add(3 * time.Second)
			l.Notice("Readout copied to clipboard", later)
			So(l.IsError(later), ShouldBeFalse)
			So(l.Text(start.Add(6*time.Second)), ShouldEqual, "Readout copied to clipboard")
			So(l.Text(start.Add(7*time.Second)), ShouldEqual, "")
		})

		Convey("Clear drops the message at once", func() {
			l.Error(errors.New("boom"), start)
			l.Clear()
			So(l.Text(start), ShouldEqual, "")
			So(l.IsError(start), ShouldBeFalse)
		})
	})
}
