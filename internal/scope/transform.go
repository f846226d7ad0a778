package scope

import (
	"math"

	"github.com/iburimskiy/virtual-oscilloscope/internal/config"
)

// Rect is a screen rectangle in pixels.
type Rect struct {
	Left, Top, Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Right() && y >= r.Top && y < r.Bottom()
}

// GridMode picks how many divisions the graticule nominally shows.
type GridMode int

const (
	// Fixed is the classic 10 x 8 graticule.
	Fixed GridMode = iota
	// Fit counts as many square divisions as fit in the viewport.
	Fit
)

func (m GridMode) String() string {
	if m == Fit {
		return "Fit"
	}
	return "10x8"
}

// Transform converts between physical units and screen pixels for one frame.
// Gridline i sits at Origin + i*CellSize on both axes, and every mapping
// below is expressed in terms of that same lattice.
type Transform struct {
	Rect        Rect
	Mode        GridMode
	CellSize    float64
	Origin      Vec
	TimePerDiv  float64 // ms
	VoltsPerDiv float64 // V
}

// NewTransform derives the frame transform from the scope rectangle and the
// front panel parameters. The cell is square and scaled by zoom.
func NewTransform(r Rect, p Params, mode GridMode) Transform {
	zoom := p.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	cell := math.Min(r.Width/config.HorizontalDivs, r.Height/config.VerticalDivs) * zoom
	if cell <= 0 {
		cell = 1
	}
	return Transform{
		Rect:     r,
		Mode:     mode,
		CellSize: cell,
		Origin: Vec{
			X: r.Left + r.Width/2 + p.Pan.X,
			Y: r.Top + r.Height/2 + p.Pan.Y,
		},
		TimePerDiv:  p.TimePerDiv,
		VoltsPerDiv: p.VoltsPerDiv,
	}
}

// Divisions returns the nominal graticule size in divisions.
func (tr Transform) Divisions() (h, v float64) {
	if tr.Mode == Fit {
		return tr.Rect.Width / tr.CellSize, tr.Rect.Height / tr.CellSize
	}
	return config.HorizontalDivs, config.VerticalDivs
}

// XToDiv converts a screen x to horizontal divisions from the origin.
func (tr Transform) XToDiv(x float64) float64 { return (x - tr.Origin.X) / tr.CellSize }

// DivToX is the inverse of XToDiv.
func (tr Transform) DivToX(d float64) float64 { return tr.Origin.X + d*tr.CellSize }

// YToDiv converts a screen y to vertical divisions, positive upwards.
func (tr Transform) YToDiv(y float64) float64 { return (tr.Origin.Y - y) / tr.CellSize }

// DivToY is the inverse of YToDiv.
func (tr Transform) DivToY(d float64) float64 { return tr.Origin.Y - d*tr.CellSize }

// XToTime maps a screen x to seconds; the origin is t = 0.
func (tr Transform) XToTime(x float64) float64 {
	return tr.XToDiv(x) * tr.TimePerDiv / 1000
}

// TimeToX maps seconds to a screen x.
func (tr Transform) TimeToX(t float64) float64 {
	return tr.DivToX(t * 1000 / tr.TimePerDiv)
}

// VoltsToY maps a voltage to a screen y.
func (tr Transform) VoltsToY(v float64) float64 {
	return tr.DivToY(v / tr.VoltsPerDiv)
}

// YToVolts maps a screen y to a voltage.
func (tr Transform) YToVolts(y float64) float64 {
	return tr.YToDiv(y) * tr.VoltsPerDiv
}

// Trace samples the waveform across the visible width every step pixels and
// returns the screen-space polyline. The right edge is always included.
func (tr Transform) Trace(p Params, step float64) []Vec {
	if step <= 0 {
		step = config.PixelStep
	}
	n := int(math.Ceil(tr.Rect.Width/step)) + 1
	points := make([]Vec, 0, n)
	for i := 0; i < n; i++ {
		x := math.Min(tr.Rect.Left+float64(i)*step, tr.Rect.Right())
		points = append(points, Vec{X: x, Y: tr.VoltsToY(p.Sample(tr.XToTime(x)))})
	}
	return points
}

// BufferTrace maps the samples of b onto the screen using the same lattice
// as the graticule.
func (tr Transform) BufferTrace(b *Buffer) []Vec {
	points := make([]Vec, b.Len())
	for i, v := range b.Samples() {
		points[i] = Vec{X: tr.TimeToX(b.Time(i)), Y: tr.VoltsToY(v)}
	}
	return points
}
