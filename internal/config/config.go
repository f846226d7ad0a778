package config

import "time"

const (
	WindowWidth  = 1280
	WindowHeight = 720

	// Side panel
	PanelWidth   = 240
	PanelPadding = 16
	ButtonHeight = 28
	SliderHeight = 12
	RowSpacing   = 8

	// Graticule
	HorizontalDivs = 10
	VerticalDivs   = 8
	MinorTicks     = 10
	GridMargin     = 2

	// Trace
	SampleCount = 512
	PixelStep   = 2.0
	TraceWidth  = 2.0

	// Zoom
	ZoomSpeed = 1.1
	MinZoom   = 1.0
	MaxZoom   = 10.0

	// Slider ranges
	MinFrequency   = 0.1
	MaxFrequency   = 500.0
	MinAmplitude   = 0.1
	MaxAmplitude   = 200.0
	MinTimePerDiv  = 0.1
	MaxTimePerDiv  = 200.0
	MinVoltsPerDiv = 0.1
	MaxVoltsPerDiv = 200.0

	// Defaults
	DefaultLabel       = "CH1"
	DefaultFrequency   = 250.0
	DefaultAmplitude   = 5.0
	DefaultTimePerDiv  = 1.0
	DefaultVoltsPerDiv = 1.0

	// Audio monitor
	AudioSampleRate = 44100
	AudioBufferMs   = 50
	AudioVolume     = -2.0
	AudioRingSize   = 4096

	// Status line
	StatusTimeout = 4 * time.Second

	AppName = "virtual-oscilloscope"
)
