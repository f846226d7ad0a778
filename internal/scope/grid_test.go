package scope

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGridLayout(t *testing.T) {
	Convey("Given the default graticule", t, func() {
		p := DefaultParams()
		tr := NewTransform(screen, p, Fixed)
		g := tr.Grid()

		Convey("It covers the viewport with a margin", func() {
			So(tr.DivToX(float64(g.MinX)), ShouldBeLessThan, screen.Left)
			So(tr.DivToX(float64(g.MaxX)), ShouldBeGreaterThan, screen.Right())
			So(g.MinY, ShouldEqual, -6)
			So(g.MaxY, ShouldEqual, 6)
			So(len(g.Vertical), ShouldEqual, g.MaxX-g.MinX+1)
			So(len(g.Horizontal), ShouldEqual, g.MaxY-g.MinY+1)
		})

		Convey("Exactly one axis per direction, through the origin", func() {
			v, h, ok := g.Axes()
			So(ok, ShouldBeTrue)
			So(v.Axis, ShouldBeTrue)
			So(h.Axis, ShouldBeTrue)
			So(v.From.X, ShouldEqual, tr.Origin.X)
			So(h.From.Y, ShouldEqual, tr.Origin.Y)

			axes := 0
			for _, l := range append(g.Vertical, g.Horizontal...) {
				if l.Axis {
					axes++
				}
			}
			So(axes, ShouldEqual, 2)
		})

		Convey("Gridlines agree with the time and voltage mapping", func() {
			for _, l := range g.Vertical {
				tt := float64(l.Index) * p.TimePerDiv / 1000
				So(l.From.X, ShouldAlmostEqual, tr.TimeToX(tt), 1e-9)
			}
			for _, l := range g.Horizontal {
				// Screen y grows downwards, volts grow upwards.
				v := -float64(l.Index) * p.VoltsPerDiv
				So(l.From.Y, ShouldAlmostEqual, tr.VoltsToY(v), 1e-9)
			}
		})

		Convey("Each division gets nine minor ticks and one major tick per axis", func() {
			counts := map[TickKind]int{}
			for _, tk := range g.Ticks {
				counts[tk.Kind]++
			}
			nx := g.MaxX - g.MinX + 1
			ny := g.MaxY - g.MinY + 1
			So(counts[MinorTick], ShouldEqual, 9*(nx+ny))
			So(counts[MajorTick], ShouldEqual, (nx-1)+(ny-1))
			So(counts[CenterTick], ShouldEqual, 2)
		})

		Convey("Minor ticks split a division into tenths", func() {
			var xs []float64
			for _, tk := range g.Ticks {
				if tk.Kind == MinorTick && tk.From.Y != tk.To.Y {
					if tk.From.X > tr.Origin.X && tk.From.X < tr.Origin.X+tr.CellSize {
						xs = append(xs, tk.From.X)
					}
				}
			}
			So(len(xs), ShouldEqual, 9)
			for i, x := range xs {
				So(x, ShouldAlmostEqual, tr.Origin.X+float64(i+1)*tr.CellSize/10, 1e-9)
			}
		})
	})
}

func TestGridStability(t *testing.T) {
	Convey("Panning by a whole cell only renumbers the lines", t, func() {
		p := DefaultParams()
		p.Zoom = 1.7
		p.Pan = Vec{X: 13.25, Y: -4.5}
		before := NewTransform(screen, p, Fixed)

		p.Pan.X += before.CellSize
		after := NewTransform(screen, p, Fixed)

		gb, ga := before.Grid(), after.Grid()
		So(ga.MinX, ShouldEqual, gb.MinX-1)
		So(ga.MaxX, ShouldEqual, gb.MaxX-1)

		positions := map[int]float64{}
		for _, l := range gb.Vertical {
			positions[l.Index] = l.From.X
		}
		for _, l := range ga.Vertical {
			if x, ok := positions[l.Index+1]; ok {
				So(l.From.X, ShouldAlmostEqual, x, 1e-9)
			}
		}
	})

	Convey("A sub-pixel pan moves every line by the same amount", t, func() {
		p := DefaultParams()
		before := NewTransform(screen, p, Fixed).Grid()
		p.Pan.X = 0.3
		after := NewTransform(screen, p, Fixed).Grid()

		So(after.MinX, ShouldEqual, before.MinX)
		So(after.MaxX, ShouldEqual, before.MaxX)
		for i := range before.Vertical {
			So(after.Vertical[i].From.X-before.Vertical[i].From.X, ShouldAlmostEqual, 0.3, 1e-9)
		}
	})

	Convey("Axes are reported missing once panned off the lattice", t, func() {
		p := DefaultParams()
		p.Pan.X = 5000
		g := NewTransform(screen, p, Fixed).Grid()
		_, _, ok := g.Axes()
		So(ok, ShouldBeFalse)
	})
}
