// Package scope holds the oscilloscope math: waveform synthesis, the mapping
// between physical units and screen pixels, and the graticule layout.
// Nothing in here touches the GUI.
package scope

import (
	"fmt"
	"math"
	"strings"

	"github.com/iburimskiy/virtual-oscilloscope/internal/config"
)

// Kind selects the waveform shape.
type Kind int

const (
	Sine Kind = iota
	Square
	Triangle
)

var kindNames = [...]string{"Sine", "Square", "Triangle"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Next cycles Sine -> Square -> Triangle -> Sine.
func (k Kind) Next() Kind {
	return (k + 1) % Kind(len(kindNames))
}

// ParseKind accepts the kind names case-insensitively.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(i), nil
		}
	}
	return Sine, fmt.Errorf("unknown waveform kind %q", s)
}

// Vec is a screen-space vector in pixels.
type Vec struct {
	X, Y float64
}

// Params is everything the user can adjust on the front panel.
type Params struct {
	Frequency   float64 // Hz
	Amplitude   float64 // V
	TimePerDiv  float64 // ms
	VoltsPerDiv float64 // V
	Kind        Kind
	Zoom        float64
	Pan         Vec
}

// DefaultParams returns the power-on front panel.
func DefaultParams() Params {
	return Params{
		Frequency:   config.DefaultFrequency,
		Amplitude:   config.DefaultAmplitude,
		TimePerDiv:  config.DefaultTimePerDiv,
		VoltsPerDiv: config.DefaultVoltsPerDiv,
		Kind:        Sine,
		Zoom:        1,
	}
}

// Sample returns the instantaneous voltage at t seconds.
func (p Params) Sample(t float64) float64 {
	return Sample(p.Kind, p.Amplitude, p.Frequency, t)
}

// Period returns the waveform period in seconds.
func (p Params) Period() float64 {
	if p.Frequency <= 0 {
		return math.Inf(1)
	}
	return 1 / p.Frequency
}

// ZoomBy multiplies the zoom by factor and clamps it to the allowed range.
func (p *Params) ZoomBy(factor float64) {
	p.Zoom = clamp(p.Zoom*factor, config.MinZoom, config.MaxZoom)
}

// ResetPan moves the origin back to the middle of the screen.
func (p *Params) ResetPan() {
	p.Pan = Vec{}
}

// Sample evaluates a waveform of the given kind. All shapes share the sine's
// phase: they start at zero (square at +amplitude) and rise first.
func Sample(kind Kind, amplitude, frequency, t float64) float64 {
	switch kind {
	case Square:
		// Both zero crossings of the sine count as positive.
		if frac(frequency*t) <= 0.5+phaseEpsilon {
			return amplitude
		}
		return -amplitude
	case Triangle:
		return amplitude * triangle(frac(frequency*t))
	default:
		return amplitude * math.Sin(2*math.Pi*frequency*t)
	}
}

// triangle maps a period fraction in [0, 1) onto a unit triangle that
// matches (2/π)·asin(sin(2πp)).
func triangle(p float64) float64 {
	switch {
	case p < 0.25:
		return 4 * p
	case p < 0.75:
		return 2 - 4*p
	default:
		return 4*p - 4
	}
}

// phaseEpsilon is how close, in periods, a phase must be to a zero crossing
// to count as on it. It absorbs the rounding in products like 3*(1/3).
const phaseEpsilon = 1e-9

// frac returns the fractional part of x in [0, 1), snapping values within
// phaseEpsilon of a whole period to 0.
func frac(x float64) float64 {
	r := math.Round(x)
	if math.Abs(x-r) <= phaseEpsilon*math.Max(1, math.Abs(x)) {
		return 0
	}
	return x - math.Floor(x)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
