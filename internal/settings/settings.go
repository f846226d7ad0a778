// Package settings persists the front panel between sessions.
//
// Only the channel label and the four calibrated sliders are stored. The
// waveform kind, zoom, pan and run state always come back at their defaults.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"github.com/iburimskiy/virtual-oscilloscope/internal/config"
	"github.com/iburimskiy/virtual-oscilloscope/internal/scope"
)

// ErrCorrupt is returned by Load when the file exists but cannot be decoded.
var ErrCorrupt = errors.New("settings file is corrupt")

type Settings struct {
	Label       string  `json:"label"`
	Frequency   float64 `json:"frequency"`
	Amplitude   float64 `json:"amplitude"`
	VoltsPerDiv float64 `json:"volts_per_div"`
	TimePerDiv  float64 `json:"time_per_div"`
}

func Default() Settings {
	return Settings{
		Label:       config.DefaultLabel,
		Frequency:   config.DefaultFrequency,
		Amplitude:   config.DefaultAmplitude,
		VoltsPerDiv: config.DefaultVoltsPerDiv,
		TimePerDiv:  config.DefaultTimePerDiv,
	}
}

// FromParams captures the persisted subset of the panel.
func FromParams(label string, p scope.Params) Settings {
	return Settings{
		Label:       label,
		Frequency:   p.Frequency,
		Amplitude:   p.Amplitude,
		VoltsPerDiv: p.VoltsPerDiv,
		TimePerDiv:  p.TimePerDiv,
	}
}

// Params returns a default panel with the stored sliders applied.
func (s Settings) Params() scope.Params {
	p := scope.DefaultParams()
	s.Apply(&p)
	return p
}

// Apply copies the stored sliders onto p, leaving runtime fields alone.
func (s Settings) Apply(p *scope.Params) {
	p.Frequency = s.Frequency
	p.Amplitude = s.Amplitude
	p.VoltsPerDiv = s.VoltsPerDiv
	p.TimePerDiv = s.TimePerDiv
}

// Clamp forces every slider into its control range. Non-finite values fall
// back to the default.
func (s Settings) Clamp() Settings {
	d := Default()
	s.Frequency = clampOr(s.Frequency, config.MinFrequency, config.MaxFrequency, d.Frequency)
	s.Amplitude = clampOr(s.Amplitude, config.MinAmplitude, config.MaxAmplitude, d.Amplitude)
	s.VoltsPerDiv = clampOr(s.VoltsPerDiv, config.MinVoltsPerDiv, config.MaxVoltsPerDiv, d.VoltsPerDiv)
	s.TimePerDiv = clampOr(s.TimePerDiv, config.MinTimePerDiv, config.MaxTimePerDiv, d.TimePerDiv)
	return s
}

func clampOr(v, lo, hi, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return math.Max(lo, math.Min(hi, v))
}

// DefaultPath returns settings.json under the user's config directory,
// falling back to the home directory when none is defined.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, herr := homedir.Dir()
		if herr != nil {
			return "", fmt.Errorf("locate config dir: %w", errors.Join(err, herr))
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, config.AppName, "settings.json"), nil
}

// Store reads and writes Settings as JSON at a fixed path.
type Store struct {
	path string
}

// NewStore expands a leading ~ in path. An empty path selects DefaultPath.
func NewStore(path string) (*Store, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		return &Store{path: p}, nil
	}
	p, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expand settings path %q: %w", path, err)
	}
	return &Store{path: p}, nil
}

func (st *Store) Path() string { return st.path }

// Load returns the stored settings, clamped. A missing file is not an
// error. A corrupt file returns defaults along with an ErrCorrupt error.
// Fields absent from the file keep their defaults.
func (st *Store) Load() (Settings, error) {
	data, err := os.ReadFile(st.path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("no stored settings, using defaults", "path", st.path)
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("read settings: %w", err)
	}

	s := Default()
	if err := json.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("%w: %s: %v", ErrCorrupt, st.path, err)
	}
	return s.Clamp(), nil
}

// Save writes s atomically, creating the parent directory if needed.
func (st *Store) Save(s Settings) error {
	data, err := json.MarshalIndent(s.Clamp(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	dir := filepath.Dir(st.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".settings-*.json")
	if err != nil {
		return fmt.Errorf("create temp settings: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if err := os.Rename(tmp.Name(), st.path); err != nil {
		return fmt.Errorf("replace settings: %w", err)
	}
	slog.Debug("settings saved", "path", st.path)
	return nil
}
