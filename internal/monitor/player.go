package monitor

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/virtual-oscilloscope/internal/config"
	"github.com/iburimskiy/virtual-oscilloscope/internal/scope"
)

// Player owns the speaker. The chain is synth -> tap -> volume -> ctrl and
// is built once; enabling and disabling only toggles the ctrl.
type Player struct {
	rate   beep.SampleRate
	synth  *Synth
	tap    *Tap
	volume *effects.Volume
	ctrl   *beep.Ctrl

	initDone bool
	enabled  bool
}

func NewPlayer(p scope.Params) *Player {
	rate := beep.SampleRate(config.AudioSampleRate)
	synth := NewSynth(rate, p)
	tap := NewTap(synth, config.AudioRingSize)
	volume := &effects.Volume{
		Streamer: tap,
		Base:     2,
		Volume:   config.AudioVolume,
	}
	return &Player{
		rate:   rate,
		synth:  synth,
		tap:    tap,
		volume: volume,
		ctrl:   &beep.Ctrl{Streamer: volume, Paused: true},
	}
}

func (pl *Player) Enabled() bool { return pl.enabled }

// Enable starts playback, initializing the speaker on first use.
func (pl *Player) Enable() error {
	if pl.enabled {
		return nil
	}
	if !pl.initDone {
		bufferSize := pl.rate.N(config.AudioBufferMs * time.Millisecond)
		if err := speaker.Init(pl.rate, bufferSize); err != nil {
			return fmt.Errorf("init speaker: %w", err)
		}
		pl.initDone = true
		speaker.Play(pl.ctrl)
		slog.Info("audio monitor ready", "rate", int(pl.rate), "buffer", bufferSize)
	}
	speaker.Lock()
	pl.ctrl.Paused = false
	speaker.Unlock()
	pl.enabled = true
	return nil
}

func (pl *Player) Disable() {
	if !pl.enabled {
		return
	}
	speaker.Lock()
	pl.ctrl.Paused = true
	speaker.Unlock()
	pl.enabled = false
}

func (pl *Player) Toggle() error {
	if pl.enabled {
		pl.Disable()
		return nil
	}
	return pl.Enable()
}

// Update follows the front panel. Safe to call every frame.
func (pl *Player) Update(p scope.Params) {
	pl.synth.SetParams(p)
}

// Level is the RMS of roughly the last frame's worth of audio, 0 when muted.
func (pl *Player) Level() float64 {
	if !pl.enabled {
		return 0
	}
	return pl.tap.Level(pl.rate.N(time.Second / 60))
}

// Close silences the speaker.
func (pl *Player) Close() {
	if !pl.initDone {
		return
	}
	speaker.Clear()
	pl.enabled = false
}
