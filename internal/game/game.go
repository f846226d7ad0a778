package game

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/virtual-oscilloscope/internal/config"
	"github.com/iburimskiy/virtual-oscilloscope/internal/monitor"
	"github.com/iburimskiy/virtual-oscilloscope/internal/scope"
	"github.com/iburimskiy/virtual-oscilloscope/internal/settings"
	"github.com/iburimskiy/virtual-oscilloscope/internal/status"
)

// Options configure a new Game.
type Options struct {
	Settings settings.Settings
	Store    *settings.Store // nil disables saving
	Kind     scope.Kind
	GridMode scope.GridMode
	Audio    bool
}

// Game is the oscilloscope front panel driven by ebiten's update loop.
type Game struct {
	// panel
	label    string
	params   scope.Params
	gridMode scope.GridMode
	running  bool

	// acquisition memory
	buffer *scope.Buffer

	// audio
	player     *monitor.Player
	audioLevel float64

	// layout, recomputed from the window size
	width, height int
	scopeRect     scope.Rect

	// widgets
	buttons []*button
	sliders []*slider

	// input edge detection
	prevKey      map[ebiten.Key]bool
	panning      bool
	lastCursorX  int
	lastCursorY  int
	activeSlider *slider

	clipboardOnce sync.Once
	clipboardOK   bool

	store  *settings.Store
	status *status.Line
}

func New(opts Options) *Game {
	s := opts.Settings.Clamp()
	params := s.Params()
	params.Kind = opts.Kind

	g := &Game{
		label:    s.Label,
		params:   params,
		gridMode: opts.GridMode,
		running:  true,
		buffer:   scope.NewBuffer(config.SampleCount),
		player:   monitor.NewPlayer(params),
		width:    config.WindowWidth,
		height:   config.WindowHeight,
		prevKey:  map[ebiten.Key]bool{},
		store:    opts.Store,
		status:   status.New(config.StatusTimeout),
	}
	g.buttons = g.newButtons()
	g.sliders = g.newSliders()
	g.layout()
	g.buffer.Fill(g.params)

	if opts.Audio {
		g.toggleAudio()
	}
	return g
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}

	if err := g.handleInput(); err != nil {
		return err
	}

	if g.running {
		g.buffer.Fill(g.params)
	}
	g.player.Update(g.params)
	g.audioLevel = g.player.Level()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	tr := g.transform()
	g.drawGrid(screen, tr)
	g.drawTrace(screen, tr)
	g.drawScaleLabels(screen, tr)
	g.drawPanel(screen)
	g.drawStatus(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.layout()
	}
	return g.width, g.height
}

// layout places the scope area to the right of the panel and stacks the
// widgets top to bottom.
func (g *Game) layout() {
	g.scopeRect = scope.Rect{
		Left:   config.PanelWidth,
		Top:    0,
		Width:  float64(max(g.width-config.PanelWidth, 1)),
		Height: float64(max(g.height, 1)),
	}

	y := 56
	w := config.PanelWidth - 2*config.PanelPadding
	for _, b := range g.buttons[:1] {
		b.place(config.PanelPadding, y, w)
		y += config.ButtonHeight + config.RowSpacing
	}
	y += config.RowSpacing
	for _, s := range g.sliders {
		s.place(config.PanelPadding, y+16, w)
		y += 16 + config.SliderHeight + 20
	}
	y += config.RowSpacing
	half := (w - config.RowSpacing) / 2
	for i, b := range g.buttons[1:] {
		x := config.PanelPadding + (i%2)*(half+config.RowSpacing)
		b.place(x, y, half)
		if i%2 == 1 {
			y += config.ButtonHeight + config.RowSpacing
		}
	}
}

func (g *Game) transform() scope.Transform {
	return scope.NewTransform(g.scopeRect, g.params, g.gridMode)
}

// Settings returns the persisted subset of the current panel.
func (g *Game) Settings() settings.Settings {
	return settings.FromParams(g.label, g.params)
}

// Close saves the settings and silences audio.
func (g *Game) Close() error {
	g.player.Close()
	if g.store == nil {
		return nil
	}
	if err := g.store.Save(g.Settings()); err != nil {
		return err
	}
	slog.Info("settings saved", "path", g.store.Path())
	return nil
}

func (g *Game) setError(err error) {
	if err == nil {
		return
	}
	g.status.Error(err, time.Now())
	slog.Warn("operation failed", "error", err)
}

func (g *Game) toggleRunning() {
	g.running = !g.running
	slog.Debug("run state changed", "running", g.running)
}

func (g *Game) toggleAudio() {
	if err := g.player.Toggle(); err != nil {
		g.setError(fmt.Errorf("audio monitor unavailable: %w", err))
		return
	}
	state := "off"
	if g.player.Enabled() {
		state = "on"
	}
	g.status.Notice("Audio monitor "+state, time.Now())
	slog.Debug("audio monitor", "enabled", g.player.Enabled())
}

func (g *Game) toggleGridMode() {
	if g.gridMode == scope.Fixed {
		g.gridMode = scope.Fit
	} else {
		g.gridMode = scope.Fixed
	}
}

// resetAll returns every control to its power-on value, label included.
func (g *Game) resetAll() {
	d := settings.Default()
	g.label = d.Label
	g.params = d.Params()
	g.gridMode = scope.Fixed
	g.running = true
	g.status.Clear()
	g.buffer.Fill(g.params)
}
