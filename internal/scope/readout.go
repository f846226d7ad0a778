package scope

import (
	"fmt"
	"math"
	"strings"
)

type unitPrefix struct {
	scale  float64
	symbol string
}

var prefixes = []unitPrefix{
	{1e6, "M"},
	{1e3, "k"},
	{1, ""},
	{1e-3, "m"},
	{1e-6, "µ"},
	{1e-9, "n"},
}

// formatEng renders v with an SI prefix and three significant digits.
func formatEng(v float64, unit string) string {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("%g %s", v, unit)
	}
	mag := math.Abs(v)
	p := prefixes[len(prefixes)-1]
	for _, candidate := range prefixes {
		if mag >= candidate.scale*0.9995 {
			p = candidate
			break
		}
	}
	scaled := v / p.scale
	var digits string
	switch a := math.Abs(scaled); {
	case a >= 99.95:
		digits = fmt.Sprintf("%.0f", scaled)
	case a >= 9.995:
		digits = fmt.Sprintf("%.1f", scaled)
	default:
		digits = fmt.Sprintf("%.2f", scaled)
	}
	return digits + " " + p.symbol + unit
}

// FormatVolts formats a voltage, e.g. "2.50 V" or "500 mV".
func FormatVolts(v float64) string { return formatEng(v, "V") }

// FormatTime formats seconds, e.g. "1.00 ms".
func FormatTime(s float64) string { return formatEng(s, "s") }

// FormatFrequency formats hertz, e.g. "250 Hz".
func FormatFrequency(hz float64) string { return formatEng(hz, "Hz") }

// Readout is a text summary of the front panel and the measured buffer, as
// pasted to the clipboard.
func Readout(label string, p Params, b *Buffer) string {
	var sb strings.Builder
	lo, hi := b.MinMax()
	fmt.Fprintf(&sb, "%s: %s\n", label, p.Kind)
	fmt.Fprintf(&sb, "Freq:    %s\n", FormatFrequency(p.Frequency))
	fmt.Fprintf(&sb, "Period:  %s\n", FormatTime(p.Period()))
	fmt.Fprintf(&sb, "Vpp:     %s\n", FormatVolts(hi-lo))
	fmt.Fprintf(&sb, "Vrms:    %s\n", FormatVolts(b.RMS()))
	fmt.Fprintf(&sb, "Time/div: %s\n", FormatTime(p.TimePerDiv/1000))
	fmt.Fprintf(&sb, "Volts/div: %s\n", FormatVolts(p.VoltsPerDiv))
	fmt.Fprintf(&sb, "Sample:  %s (%d pts)\n", FormatTime(b.Interval()), b.Len())
	fmt.Fprintf(&sb, "Zoom:    %.1fx", p.Zoom)
	return sb.String()
}
