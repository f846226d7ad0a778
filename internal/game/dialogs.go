package game

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ncruces/zenity"
	"golang.design/x/clipboard"

	"github.com/iburimskiy/virtual-oscilloscope/internal/scope"
)

// The dialogs below block the update loop until dismissed.

func (g *Game) editLabel() {
	label, err := zenity.Entry(
		"Channel label:",
		zenity.Title("Edit Label"),
		zenity.EntryText(g.label),
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			g.setError(fmt.Errorf("label dialog: %w", err))
		}
		return
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return
	}
	slog.Info("label changed", "from", g.label, "to", label)
	g.label = label
}

func (g *Game) confirmReset() {
	err := zenity.Question(
		"Reset every control to its default value?",
		zenity.Title("Reset"),
		zenity.OKLabel("Reset"),
		zenity.CancelLabel("Keep"),
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			g.setError(fmt.Errorf("reset dialog: %w", err))
		}
		return
	}
	g.resetAll()
	slog.Info("panel reset to defaults")
}

func (g *Game) copyReadout() {
	g.clipboardOnce.Do(func() {
		err := clipboard.Init()
		g.clipboardOK = err == nil
		if err != nil {
			slog.Warn("clipboard unavailable", "error", err)
		}
	})
	if !g.clipboardOK {
		g.setError(errors.New("clipboard unavailable"))
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(scope.Readout(g.label, g.params, g.buffer)))
	g.status.Notice("Readout copied to clipboard", time.Now())
}

// ShowError reports a fatal error in a native dialog.
func ShowError(err error) {
	if dlgErr := zenity.Error(err.Error(), zenity.Title("Virtual Oscilloscope")); dlgErr != nil {
		slog.Error("error dialog failed", "error", dlgErr)
	}
}
