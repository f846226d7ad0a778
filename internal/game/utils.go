package game

import (
	"image/color"
	"math"
)

var (
	colorBackground = color.RGBA{R: 12, G: 14, B: 18, A: 255}
	colorPanel      = color.RGBA{R: 24, G: 28, B: 36, A: 255}
	colorBorder     = color.RGBA{R: 90, G: 100, B: 120, A: 255}
	colorHighlight  = color.RGBA{R: 170, G: 190, B: 220, A: 255}
	colorTrack      = color.RGBA{R: 35, G: 40, B: 52, A: 255}
	colorTrackFill  = color.RGBA{R: 70, G: 110, B: 170, A: 255}
	colorGrid       = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	colorGridAxis   = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	colorTick       = color.RGBA{R: 140, G: 140, B: 140, A: 255}
	colorCenterTick = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorTrace      = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	colorHeldTrace  = color.RGBA{R: 255, G: 170, B: 0, A: 255}
	colorLabel      = color.RGBA{R: 160, G: 170, B: 185, A: 255}
)

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}

// levelColor runs from green at silence to red at full scale.
func levelColor(level float64) color.RGBA {
	r, g, b := hsvToRgb(120*(1-clamp01(level)), 0.8, 0.9)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// sliderValue maps a knob position in [0, 1] onto [lo, hi].
func sliderValue(f, lo, hi float64, logarithmic bool) float64 {
	f = clamp01(f)
	if logarithmic {
		return lo * math.Pow(hi/lo, f)
	}
	return lo + f*(hi-lo)
}

// sliderFraction is the inverse of sliderValue.
func sliderFraction(v, lo, hi float64, logarithmic bool) float64 {
	if logarithmic {
		return clamp01(math.Log(v/lo) / math.Log(hi/lo))
	}
	return clamp01((v - lo) / (hi - lo))
}
