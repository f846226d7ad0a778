package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/virtual-oscilloscope/internal/config"
	"github.com/iburimskiy/virtual-oscilloscope/internal/scope"
)

type button struct {
	x, y, w, h int
	caption    func(g *Game) string
	onClick    func(g *Game)

	hovered bool
	pressed bool
}

func (b *button) place(x, y, w int) {
	b.x, b.y, b.w, b.h = x, y, w, config.ButtonHeight
}

func (b *button) contains(mx, my int) bool {
	return mx >= b.x && mx <= b.x+b.w && my >= b.y && my <= b.y+b.h
}

func (b *button) draw(screen *ebiten.Image, g *Game) {
	var bgColor color.Color
	if b.pressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if b.hovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 45, G: 55, B: 75, A: 255} // Normal
	}
	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bgColor, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 1, colorBorder, false)

	text := b.caption(g)
	textWidth := len(text) * 6 // debug font glyphs are 6px wide
	ebitenutil.DebugPrintAt(screen, text, b.x+(b.w-textWidth)/2, b.y+(b.h-16)/2)
}

func (g *Game) newButtons() []*button {
	return []*button{
		{
			caption: func(g *Game) string { return "Waveform: " + g.params.Kind.String() },
			onClick: func(g *Game) { g.params.Kind = g.params.Kind.Next() },
		},
		{
			caption: func(*Game) string { return "Reset Pan" },
			onClick: func(g *Game) { g.params.ResetPan() },
		},
		{
			caption: func(g *Game) string {
				if g.running {
					return "Stop"
				}
				return "Run"
			},
			onClick: (*Game).toggleRunning,
		},
		{
			caption: func(g *Game) string {
				if g.player.Enabled() {
					return "Audio: On"
				}
				return "Audio: Off"
			},
			onClick: (*Game).toggleAudio,
		},
		{
			caption: func(g *Game) string { return "Grid: " + g.gridMode.String() },
			onClick: (*Game).toggleGridMode,
		},
		{
			caption: func(*Game) string { return "Edit Label" },
			onClick: (*Game).editLabel,
		},
		{
			caption: func(*Game) string { return "Copy" },
			onClick: (*Game).copyReadout,
		},
	}
}

// slider is a horizontal value control. Logarithmic sliders spread their
// range evenly in decades.
type slider struct {
	x, y, w int
	label   string
	min     float64
	max     float64
	log     bool
	format  func(float64) string
	value   func(p *scope.Params) *float64

	hovered bool
}

func (s *slider) place(x, y, w int) {
	s.x, s.y, s.w = x, y, w
}

func (s *slider) contains(mx, my int) bool {
	// The hit area is taller than the track.
	return mx >= s.x-4 && mx <= s.x+s.w+4 && my >= s.y-6 && my <= s.y+config.SliderHeight+6
}

func (s *slider) fraction(p *scope.Params) float64 {
	return sliderFraction(*s.value(p), s.min, s.max, s.log)
}

func (s *slider) setFromCursor(p *scope.Params, mx int) {
	f := clamp01(float64(mx-s.x) / float64(s.w))
	*s.value(p) = sliderValue(f, s.min, s.max, s.log)
}

func (s *slider) draw(screen *ebiten.Image, p *scope.Params) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s: %s", s.label, s.format(*s.value(p))), s.x, s.y-18)

	vector.DrawFilledRect(screen, float32(s.x), float32(s.y), float32(s.w), config.SliderHeight, colorTrack, false)
	fill := s.fraction(p) * float64(s.w)
	if fill > 0 {
		vector.DrawFilledRect(screen, float32(s.x), float32(s.y), float32(fill), config.SliderHeight, colorTrackFill, false)
	}
	border := colorBorder
	if s.hovered {
		border = colorHighlight
	}
	vector.StrokeRect(screen, float32(s.x), float32(s.y), float32(s.w), config.SliderHeight, 1, border, false)

	knobX := float32(float64(s.x) + fill)
	knobY := float32(s.y) + config.SliderHeight/2
	vector.DrawFilledCircle(screen, knobX, knobY, 7, color.White, true)
	vector.StrokeCircle(screen, knobX, knobY, 7, 2, colorBorder, true)
}

func (g *Game) newSliders() []*slider {
	return []*slider{
		{
			label: "Frequency", min: config.MinFrequency, max: config.MaxFrequency, log: true,
			format: scope.FormatFrequency,
			value:  func(p *scope.Params) *float64 { return &p.Frequency },
		},
		{
			label: "Zoom", min: config.MinZoom, max: config.MaxZoom, log: true,
			format: func(v float64) string { return fmt.Sprintf("%.1fx", v) },
			value:  func(p *scope.Params) *float64 { return &p.Zoom },
		},
		{
			label: "Amplitude", min: config.MinAmplitude, max: config.MaxAmplitude,
			format: scope.FormatVolts,
			value:  func(p *scope.Params) *float64 { return &p.Amplitude },
		},
		{
			label: "Time/div", min: config.MinTimePerDiv, max: config.MaxTimePerDiv,
			format: func(v float64) string { return scope.FormatTime(v / 1000) },
			value:  func(p *scope.Params) *float64 { return &p.TimePerDiv },
		},
		{
			label: "Volts/div", min: config.MinVoltsPerDiv, max: config.MaxVoltsPerDiv,
			format: scope.FormatVolts,
			value:  func(p *scope.Params) *float64 { return &p.VoltsPerDiv },
		},
	}
}
