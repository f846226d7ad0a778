package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/virtual-oscilloscope/internal/config"
	"github.com/iburimskiy/virtual-oscilloscope/internal/scope"
)

func (g *Game) handleInput() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()
	g.handleWidgets(mouseX, mouseY)
	g.handleScope(mouseX, mouseY)
	g.lastCursorX, g.lastCursorY = mouseX, mouseY

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)

	if justPressed(ebiten.KeySpace) {
		g.toggleRunning()
	}
	if justPressed(ebiten.KeyDigit1) {
		g.params.Kind = scope.Sine
	}
	if justPressed(ebiten.KeyDigit2) {
		g.params.Kind = scope.Square
	}
	if justPressed(ebiten.KeyDigit3) {
		g.params.Kind = scope.Triangle
	}
	if justPressed(ebiten.KeyA) {
		g.toggleAudio()
	}
	if justPressed(ebiten.KeyG) {
		g.toggleGridMode()
	}
	if justPressed(ebiten.KeyL) {
		g.editLabel()
	}
	if justPressed(ebiten.KeyC) {
		g.copyReadout()
	}
	if justPressed(ebiten.KeyZ) {
		g.params.Zoom = config.MinZoom
	}
	if justPressed(ebiten.KeyR) {
		if ctrl {
			g.confirmReset()
		} else {
			g.params.ResetPan()
		}
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) handleWidgets(mouseX, mouseY int) {
	for _, b := range g.buttons {
		b.hovered = b.contains(mouseX, mouseY)
		if b.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			b.pressed = true
		}
	}
	for _, s := range g.sliders {
		s.hovered = s.contains(mouseX, mouseY)
		if s.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.activeSlider = s
		}
	}

	if g.activeSlider != nil && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.activeSlider.setFromCursor(&g.params, mouseX)
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.activeSlider = nil
		for _, b := range g.buttons {
			if b.pressed && b.hovered {
				b.onClick(g)
			}
			b.pressed = false
		}
	}
}

// handleScope zooms with the wheel and pans by dragging inside the scope
// area. The right button recentres.
func (g *Game) handleScope(mouseX, mouseY int) {
	if g.panning {
		g.params.Pan.X += float64(mouseX - g.lastCursorX)
		g.params.Pan.Y += float64(mouseY - g.lastCursorY)
	}

	if g.scopeRect.Contains(float64(mouseX), float64(mouseY)) {
		if _, dy := ebiten.Wheel(); dy != 0 {
			// Positive dy is wheel up: zoom in
			if dy > 0 {
				g.params.ZoomBy(config.ZoomSpeed)
			} else {
				g.params.ZoomBy(1 / config.ZoomSpeed)
			}
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && g.activeSlider == nil {
			g.panning = true
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
			g.params.ResetPan()
		}
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.panning = false
	}
}
