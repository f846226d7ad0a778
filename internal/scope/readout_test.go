package scope

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFormat(t *testing.T) {
	Convey("Engineering units pick a readable prefix", t, func() {
		So(FormatFrequency(250), ShouldEqual, "250 Hz")
		So(FormatFrequency(1000), ShouldEqual, "1.00 kHz")
		So(FormatFrequency(0.1), ShouldEqual, "100 mHz")
		So(FormatTime(0.001), ShouldEqual, "1.00 ms")
		So(FormatTime(0.0005), ShouldEqual, "500 µs")
		So(FormatTime(0.004), ShouldEqual, "4.00 ms")
		So(FormatVolts(2.5), ShouldEqual, "2.50 V")
		So(FormatVolts(-12.5), ShouldEqual, "-12.5 V")
		So(FormatVolts(0), ShouldEqual, "0 V")
	})
}

func TestReadout(t *testing.T) {
	Convey("The readout summarises the panel and the buffer", t, func() {
		p := DefaultParams()
		p.Kind = Square
		b := NewBuffer(512)
		b.Fill(p)

		text := Readout("CH1", p, b)
		So(text, ShouldStartWith, "CH1: Square")
		So(text, ShouldContainSubstring, "250 Hz")
		So(text, ShouldContainSubstring, "Period:  4.00 ms")
		So(text, ShouldContainSubstring, "Vpp:     10.0 V")
		So(text, ShouldContainSubstring, "Sample:  19.6 µs (512 pts)")
		So(strings.Count(text, "\n"), ShouldEqual, 8)
	})
}
