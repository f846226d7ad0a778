package monitor

import (
	"math"
	"testing"

	"github.com/faiface/beep"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/iburimskiy/virtual-oscilloscope/internal/scope"
)

// counter emits 1, 2, 3, ... on both channels.
type counter struct{ next float64 }

func (c *counter) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		c.next++
		samples[i] = [2]float64{c.next, c.next}
	}
	return len(samples), true
}

func (c *counter) Err() error { return nil }

func TestTap(t *testing.T) {
	Convey("Given a tap with a ring of 4", t, func() {
		tap := NewTap(&counter{}, 4)

		Convey("An empty tap has nothing to show", func() {
			So(tap.Snapshot(10), ShouldBeEmpty)
			So(tap.Level(10), ShouldEqual, 0.0)
		})

		Convey("It passes samples through untouched", func() {
			buf := make([][2]float64, 3)
			n, ok := tap.Stream(buf)
			So(n, ShouldEqual, 3)
			So(ok, ShouldBeTrue)
			So(buf[2], ShouldResemble, [2]float64{3, 3})
			So(tap.Snapshot(10), ShouldResemble, [][2]float64{{1, 1}, {2, 2}, {3, 3}})
		})

		Convey("After wrapping it keeps the newest frames, oldest first", func() {
			tap.Stream(make([][2]float64, 3))
			tap.Stream(make([][2]float64, 3))
			So(tap.Snapshot(4), ShouldResemble, [][2]float64{{3, 3}, {4, 4}, {5, 5}, {6, 6}})
			So(tap.Snapshot(2), ShouldResemble, [][2]float64{{5, 5}, {6, 6}})
		})

		Convey("Level is the RMS of the mono mix", func() {
			tap.Stream(make([][2]float64, 2))
			So(tap.Level(2), ShouldAlmostEqual, math.Sqrt((1+4)/2.0), 1e-12)
		})
	})
}

func TestSynth(t *testing.T) {
	Convey("Given a synth at 44.1 kHz", t, func() {
		p := scope.DefaultParams()
		p.Frequency = 441
		s := NewSynth(beep.SampleRate(44100), p)
		buf := make([][2]float64, 200)
		n, ok := s.Stream(buf)

		Convey("It never runs dry", func() {
			So(n, ShouldEqual, len(buf))
			So(ok, ShouldBeTrue)
			So(s.Err(), ShouldBeNil)
		})

		Convey("A sine starts at zero and repeats every 100 samples", func() {
			So(buf[0][0], ShouldEqual, 0.0)
			So(buf[25][0], ShouldAlmostEqual, 1, 1e-9)
			So(buf[125][0], ShouldAlmostEqual, buf[25][0], 1e-9)
			So(buf[37][1], ShouldEqual, buf[37][0])
		})

		Convey("Output is normalized regardless of amplitude", func() {
			p.Amplitude = 150
			p.Kind = scope.Square
			s.SetParams(p)
			s.Stream(buf)
			for _, f := range buf {
				So(math.Abs(f[0]), ShouldEqual, 1.0)
			}
		})
	})
}
