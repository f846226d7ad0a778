package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/virtual-oscilloscope/internal/config"
	"github.com/iburimskiy/virtual-oscilloscope/internal/game"
	"github.com/iburimskiy/virtual-oscilloscope/internal/scope"
	"github.com/iburimskiy/virtual-oscilloscope/internal/settings"
)

func main() {
	var (
		settingsPath string
		width        int
		height       int
		kindName     string
		audio        bool
		fit          bool
		verbose      bool
		reset        bool
	)

	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&settingsPath, "settings", "", "settings file (default: user config dir)")
	flagSet.IntVar(&width, "width", config.WindowWidth, "initial window width")
	flagSet.IntVar(&height, "height", config.WindowHeight, "initial window height")
	flagSet.StringVar(&kindName, "kind", "sine", "waveform: sine, square or triangle")
	flagSet.BoolVar(&audio, "audio", false, "start with the audio monitor on")
	flagSet.BoolVar(&fit, "fit", false, "fit divisions to the window instead of 10x8")
	flagSet.BoolVar(&verbose, "v", false, "debug logging")
	flagSet.BoolVar(&reset, "reset", false, "ignore stored settings")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: ./virtual-oscilloscope [-settings path] [-kind sine|square|triangle] [-audio] [-fit] [-v]")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	kind, err := scope.ParseKind(kindName)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	store, err := settings.NewStore(settingsPath)
	if err != nil {
		slog.Error("settings unavailable, changes will not be saved", "error", err)
	}

	stored := settings.Default()
	if store != nil && !reset {
		stored, err = store.Load()
		switch {
		case errors.Is(err, settings.ErrCorrupt):
			slog.Warn("ignoring corrupt settings", "error", err)
		case err != nil:
			slog.Warn("could not load settings", "error", err)
		default:
			slog.Info("settings loaded", "path", store.Path(), "label", stored.Label)
		}
	}

	gridMode := scope.Fixed
	if fit {
		gridMode = scope.Fit
	}

	g := game.New(game.Options{
		Settings: stored,
		Store:    store,
		Kind:     kind,
		GridMode: gridMode,
		Audio:    audio,
	})

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Virtual Oscilloscope - wheel: zoom, drag: pan, Space: run/stop, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	runErr := ebiten.RunGame(g)
	if err := g.Close(); err != nil {
		slog.Error("could not save settings", "error", err)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		slog.Error("window failed", "error", runErr)
		game.ShowError(runErr)
		os.Exit(1)
	}
}
