package game

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/virtual-oscilloscope/internal/config"
	"github.com/iburimskiy/virtual-oscilloscope/internal/scope"
)

var (
	whiteImage = func() *ebiten.Image {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		return img
	}()
	// whitePixel is the source for DrawTriangles; vertices sample (1, 1).
	whitePixel = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func strokeLine(dst *ebiten.Image, l scope.Line, width float32, clr color.Color) {
	vector.StrokeLine(dst, float32(l.From.X), float32(l.From.Y), float32(l.To.X), float32(l.To.Y), width, clr, false)
}

// scopeArea returns a subimage clipped to the scope rectangle so lines laid
// out past the edges do not spill into the panel.
func (g *Game) scopeArea(screen *ebiten.Image) *ebiten.Image {
	r := g.scopeRect
	return screen.SubImage(image.Rect(int(r.Left), int(r.Top), int(r.Right()), int(r.Bottom()))).(*ebiten.Image)
}

func (g *Game) drawGrid(screen *ebiten.Image, tr scope.Transform) {
	dst := g.scopeArea(screen)
	grid := tr.Grid()

	for _, l := range grid.Vertical {
		if l.Axis {
			strokeLine(dst, l.Line, 1.5, colorGridAxis)
		} else {
			strokeLine(dst, l.Line, 1, colorGrid)
		}
	}
	for _, l := range grid.Horizontal {
		if l.Axis {
			strokeLine(dst, l.Line, 1.5, colorGridAxis)
		} else {
			strokeLine(dst, l.Line, 1, colorGrid)
		}
	}
	for _, tk := range grid.Ticks {
		switch tk.Kind {
		case scope.MinorTick:
			strokeLine(dst, tk.Line, 1, colorTick)
		case scope.MajorTick:
			strokeLine(dst, tk.Line, 1.5, colorTick)
		case scope.CenterTick:
			strokeLine(dst, tk.Line, 2, colorCenterTick)
		}
	}
}

// drawTrace draws the live waveform across the whole width while running,
// and the frozen acquisition buffer while stopped.
func (g *Game) drawTrace(screen *ebiten.Image, tr scope.Transform) {
	dst := g.scopeArea(screen)

	var points []scope.Vec
	clr := colorTrace
	if g.running {
		points = tr.Trace(g.params, config.PixelStep)
	} else {
		points = tr.BufferTrace(g.buffer)
		clr = colorHeldTrace
	}
	if len(points) < 2 {
		return
	}

	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	strokeOpts := &vector.StrokeOptions{
		Width:    config.TraceWidth,
		LineJoin: vector.LineJoinRound,
	}
	vertices, indices := path.AppendVerticesAndIndicesForStroke(nil, nil, strokeOpts)
	for i := range vertices {
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
		vertices[i].ColorR = float32(clr.R) / 255
		vertices[i].ColorG = float32(clr.G) / 255
		vertices[i].ColorB = float32(clr.B) / 255
		vertices[i].ColorA = float32(clr.A) / 255
	}
	dst.DrawTriangles(vertices, indices, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// drawScaleLabels prints the time and voltage of each major division along
// the centre axes, clamped to the visible edges when the axes are off screen.
func (g *Game) drawScaleLabels(screen *ebiten.Image, tr scope.Transform) {
	dst := g.scopeArea(screen)
	grid := tr.Grid()
	face := basicfont.Face7x13
	r := g.scopeRect

	labelY := int(min(max(tr.Origin.Y+16, r.Top+14), r.Bottom()-4))
	for _, l := range grid.Vertical {
		if l.Index == 0 || l.Index%2 != 0 {
			continue
		}
		label := scope.FormatTime(tr.XToTime(l.From.X))
		text.Draw(dst, label, face, int(l.From.X)+3, labelY, colorLabel)
	}

	labelX := int(min(max(tr.Origin.X+6, r.Left+4), r.Right()-64))
	for _, l := range grid.Horizontal {
		if l.Index == 0 || l.Index%2 != 0 {
			continue
		}
		label := scope.FormatVolts(tr.YToVolts(l.From.Y))
		text.Draw(dst, label, face, labelX, int(l.From.Y)-3, colorLabel)
	}
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.PanelWidth, float32(g.height), colorPanel, false)
	vector.StrokeLine(screen, config.PanelWidth, 0, config.PanelWidth, float32(g.height), 1, colorBorder, false)

	text.Draw(screen, "Virtual Oscilloscope", basicfont.Face7x13, config.PanelPadding, 24, colorHighlight)
	ebitenutil.DebugPrintAt(screen, g.label, config.PanelPadding, 30)

	for _, b := range g.buttons {
		b.draw(screen, g)
	}
	for _, s := range g.sliders {
		s.draw(screen, &g.params)
	}

	g.drawMeasurements(screen)
}

func (g *Game) drawMeasurements(screen *ebiten.Image) {
	lo, hi := g.buffer.MinMax()
	h, v := g.transform().Divisions()
	lines := []string{
		"Period: " + scope.FormatTime(g.params.Period()),
		"Vpp:    " + scope.FormatVolts(hi-lo),
		"Vrms:   " + scope.FormatVolts(g.buffer.RMS()),
		fmt.Sprintf("Grid:   %.1f x %.1f div", h, v),
	}
	y := g.height - 150
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, config.PanelPadding, y)
		y += 16
	}

	if g.player.Enabled() {
		w := float32(config.PanelWidth - 2*config.PanelPadding)
		level := float32(clamp01(g.audioLevel))
		y += 4
		vector.DrawFilledRect(screen, config.PanelPadding, float32(y), w, 6, colorTrack, false)
		vector.DrawFilledRect(screen, config.PanelPadding, float32(y), w*level, 6, levelColor(g.audioLevel), false)
	}
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	status := "RUN"
	if !g.running {
		status = "STOP"
	}
	status += " | Space: run/stop, 1-3: waveform, wheel: zoom, drag: pan, Q: quit"
	if msg := g.status.Text(time.Now()); msg != "" {
		status += " | " + msg
	}
	ebitenutil.DebugPrintAt(screen, status, config.PanelPadding, g.height-24)
}
