// Package monitor plays the synthesized signal through the speaker so the
// waveform on screen can also be heard.
package monitor

import (
	"math"
	"sync"

	"github.com/faiface/beep"

	"github.com/iburimskiy/virtual-oscilloscope/internal/scope"
)

// Synth is an endless beep.Streamer evaluating the scope waveform at the
// speaker sample rate. Output is normalized to ±1 regardless of amplitude;
// loudness is left to the volume stage.
type Synth struct {
	rate beep.SampleRate

	mu   sync.Mutex
	kind scope.Kind
	freq float64
	t    float64
}

func NewSynth(rate beep.SampleRate, p scope.Params) *Synth {
	s := &Synth{rate: rate}
	s.SetParams(p)
	return s
}

// SetParams switches waveform and frequency. The running time is rescaled
// so the phase stays continuous across a frequency step.
func (s *Synth) SetParams(p scope.Params) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.Frequency != s.freq && s.freq > 0 && p.Frequency > 0 {
		s.t = s.t * s.freq / p.Frequency
	}
	s.kind = p.Kind
	s.freq = p.Frequency
}

func (s *Synth) Stream(samples [][2]float64) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dt := 1 / float64(s.rate)
	period := math.Inf(1)
	if s.freq > 0 {
		period = 1 / s.freq
	}
	for i := range samples {
		v := scope.Sample(s.kind, 1, s.freq, s.t)
		samples[i][0] = v
		samples[i][1] = v
		s.t += dt
		if s.t >= period {
			s.t -= period
		}
	}
	return len(samples), true
}

func (s *Synth) Err() error { return nil }
