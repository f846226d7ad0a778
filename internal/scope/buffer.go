package scope

import (
	"math"

	"github.com/iburimskiy/virtual-oscilloscope/internal/config"
)

// Buffer is the acquisition memory: a fixed number of voltages spread over
// the nominal ten horizontal divisions, with the middle sample at t = 0.
type Buffer struct {
	samples []float64
	dt      float64
}

// NewBuffer allocates a buffer of n samples. n below 2 is raised to 2.
func NewBuffer(n int) *Buffer {
	if n < 2 {
		n = 2
	}
	return &Buffer{samples: make([]float64, n)}
}

// Fill regenerates every sample from p.
func (b *Buffer) Fill(p Params) {
	n := len(b.samples)
	full := config.HorizontalDivs * p.TimePerDiv / 1000
	b.dt = full / float64(n-1)
	center := n / 2
	for i := range b.samples {
		b.samples[i] = p.Sample(float64(i-center) * b.dt)
	}
}

// Len returns the number of samples.
func (b *Buffer) Len() int { return len(b.samples) }

// Samples exposes the underlying slice; callers must not keep it across Fill.
func (b *Buffer) Samples() []float64 { return b.samples }

// Time returns the time in seconds of sample i.
func (b *Buffer) Time(i int) float64 {
	return float64(i-len(b.samples)/2) * b.dt
}

// Interval returns the spacing between samples in seconds.
func (b *Buffer) Interval() float64 { return b.dt }

// MinMax returns the smallest and largest sample.
func (b *Buffer) MinMax() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range b.samples {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// RMS returns the root mean square over the buffer.
func (b *Buffer) RMS() float64 {
	var sumSquares float64
	for _, v := range b.samples {
		sumSquares += v * v
	}
	return math.Sqrt(sumSquares / float64(len(b.samples)))
}
