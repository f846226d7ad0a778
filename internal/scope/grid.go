package scope

import (
	"math"

	"github.com/iburimskiy/virtual-oscilloscope/internal/config"
)

// Line is a screen-space segment.
type Line struct {
	From, To Vec
}

// Gridline is one major division line. Index is the division number counted
// from the origin; Axis marks index 0.
type Gridline struct {
	Line
	Index int
	Axis  bool
}

// TickKind distinguishes the marks drawn along the centre axes.
type TickKind int

const (
	MinorTick TickKind = iota
	MajorTick
	CenterTick
)

// Tick is a short mark across one of the centre axes.
type Tick struct {
	Line
	Kind TickKind
}

// Grid is the graticule for one frame.
type Grid struct {
	MinX, MaxX int // visible vertical line indices
	MinY, MaxY int // visible horizontal line indices

	Vertical   []Gridline
	Horizontal []Gridline
	Ticks      []Tick
}

// Axes returns the highlighted centre pair: the vertical (time zero) and
// horizontal (zero volt) lines.
func (g Grid) Axes() (vertical, horizontal Gridline, ok bool) {
	if g.MinX > 0 || g.MaxX < 0 || g.MinY > 0 || g.MaxY < 0 {
		return Gridline{}, Gridline{}, false
	}
	return g.Vertical[-g.MinX], g.Horizontal[-g.MinY], true
}

// Grid lays out the graticule. Line positions depend only on the origin and
// cell size, never on the viewport edges, so panning and zooming move the
// lattice rigidly. Two extra divisions are laid out on each side.
func (tr Transform) Grid() Grid {
	r := tr.Rect
	cell := tr.CellSize
	g := Grid{
		MinX: int(math.Floor((r.Left-tr.Origin.X)/cell)) - config.GridMargin,
		MaxX: int(math.Ceil((r.Right()-tr.Origin.X)/cell)) + config.GridMargin,
		MinY: int(math.Floor((r.Top-tr.Origin.Y)/cell)) - config.GridMargin,
		MaxY: int(math.Ceil((r.Bottom()-tr.Origin.Y)/cell)) + config.GridMargin,
	}

	g.Vertical = make([]Gridline, 0, g.MaxX-g.MinX+1)
	for i := g.MinX; i <= g.MaxX; i++ {
		x := tr.Origin.X + float64(i)*cell
		g.Vertical = append(g.Vertical, Gridline{
			Line:  Line{From: Vec{x, r.Top}, To: Vec{x, r.Bottom()}},
			Index: i,
			Axis:  i == 0,
		})
	}
	g.Horizontal = make([]Gridline, 0, g.MaxY-g.MinY+1)
	for j := g.MinY; j <= g.MaxY; j++ {
		y := tr.Origin.Y + float64(j)*cell
		g.Horizontal = append(g.Horizontal, Gridline{
			Line:  Line{From: Vec{r.Left, y}, To: Vec{r.Right(), y}},
			Index: j,
			Axis:  j == 0,
		})
	}

	g.Ticks = tr.axisTicks(g)
	return g
}

func (tr Transform) axisTicks(g Grid) []Tick {
	cell := tr.CellSize
	minorLen := cell * 0.10
	majorLen := cell * 0.22
	centerLen := cell * 0.25
	ox, oy := tr.Origin.X, tr.Origin.Y

	perAxis := func(lo, hi int) int { return (hi - lo + 1) * config.MinorTicks }
	ticks := make([]Tick, 0, perAxis(g.MinX, g.MaxX)+perAxis(g.MinY, g.MaxY)+2)

	// Along the vertical axis: horizontal marks at each division step in y.
	for div := g.MinY; div <= g.MaxY; div++ {
		top := oy + float64(div)*cell
		if div != 0 {
			ticks = append(ticks, Tick{Line{Vec{ox - majorLen/2, top}, Vec{ox + majorLen/2, top}}, MajorTick})
		}
		for m := 1; m < config.MinorTicks; m++ {
			y := top + float64(m)/config.MinorTicks*cell
			ticks = append(ticks, Tick{Line{Vec{ox - minorLen/2, y}, Vec{ox + minorLen/2, y}}, MinorTick})
		}
	}
	// Along the horizontal axis: vertical marks at each division step in x.
	for div := g.MinX; div <= g.MaxX; div++ {
		left := ox + float64(div)*cell
		if div != 0 {
			ticks = append(ticks, Tick{Line{Vec{left, oy - majorLen/2}, Vec{left, oy + majorLen/2}}, MajorTick})
		}
		for m := 1; m < config.MinorTicks; m++ {
			x := left + float64(m)/config.MinorTicks*cell
			ticks = append(ticks, Tick{Line{Vec{x, oy - minorLen/2}, Vec{x, oy + minorLen/2}}, MinorTick})
		}
	}

	ticks = append(ticks,
		Tick{Line{Vec{ox, oy - centerLen/2}, Vec{ox, oy + centerLen/2}}, CenterTick},
		Tick{Line{Vec{ox - centerLen/2, oy}, Vec{ox + centerLen/2, oy}}, CenterTick},
	)
	return ticks
}
