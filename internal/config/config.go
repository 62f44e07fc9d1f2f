// Package config holds the runtime configuration: capture device settings,
// the starting palette and colour scheme, frame pacing, and terminal cell
// shape. Values come from defaults, then an optional YAML config file, then
// command-line flags, each layer overriding the one below.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sahilm/fuzzy"
	"gopkg.in/yaml.v3"

	"github.com/The-Focus-AI/asciiwebcam/internal/ascii"
	"github.com/The-Focus-AI/asciiwebcam/internal/pipeline"
)

// Config is the merged runtime configuration.
type Config struct {
	// Capture settings
	Device        string
	InputFormat   string
	CaptureWidth  int
	CaptureHeight int
	CaptureFPS    int

	// Style settings
	Preset string
	Scheme string

	// Rendering settings
	CellAspect   float64
	FastInterval time.Duration
	SlowInterval time.Duration
	HideStatus   bool

	// Diagnostics
	LogFile string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Device:        "/dev/video0",
		InputFormat:   "v4l2",
		CaptureWidth:  640,
		CaptureHeight: 480,
		CaptureFPS:    30,
		Preset:        ascii.DefaultPalette,
		Scheme:        ascii.DefaultScheme,
		CellAspect:    ascii.DefaultCellAspect,
		FastInterval:  pipeline.FastInterval,
		SlowInterval:  pipeline.SlowInterval,
	}
}

// DefaultPath returns the user config file location,
// ~/.config/asciiwebcam/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "asciiwebcam", "config.yaml")
}

// fileConfig mirrors Config with durations as strings, the way they read in
// YAML ("66ms", "1s").
type fileConfig struct {
	Device        string  `yaml:"device"`
	InputFormat   string  `yaml:"input_format"`
	CaptureWidth  int     `yaml:"capture_width"`
	CaptureHeight int     `yaml:"capture_height"`
	CaptureFPS    int     `yaml:"capture_fps"`
	Preset        string  `yaml:"preset"`
	Scheme        string  `yaml:"scheme"`
	CellAspect    float64 `yaml:"cell_aspect"`
	FastInterval  string  `yaml:"fast_interval"`
	SlowInterval  string  `yaml:"slow_interval"`
	HideStatus    bool    `yaml:"hide_status"`
	LogFile       string  `yaml:"log_file"`
}

// LoadFile reads a YAML config file. A missing file is not an error; it
// yields a zero Config for merging.
func LoadFile(path string) (Config, error) {
	var c Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, fmt.Errorf("reading config: %w", err)
	}

	var f fileConfig
	if err := yaml.Unmarshal(data, &f); err != nil {
		return c, fmt.Errorf("parsing %s: %w", path, err)
	}

	c = Config{
		Device:        f.Device,
		InputFormat:   f.InputFormat,
		CaptureWidth:  f.CaptureWidth,
		CaptureHeight: f.CaptureHeight,
		CaptureFPS:    f.CaptureFPS,
		Preset:        f.Preset,
		Scheme:        f.Scheme,
		CellAspect:    f.CellAspect,
		HideStatus:    f.HideStatus,
		LogFile:       f.LogFile,
	}
	if c.FastInterval, err = parseInterval(path, "fast_interval", f.FastInterval); err != nil {
		return c, err
	}
	if c.SlowInterval, err = parseInterval(path, "slow_interval", f.SlowInterval); err != nil {
		return c, err
	}
	return c, nil
}

func parseInterval(path, key, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %s: %w", path, key, err)
	}
	return d, nil
}

// Merge overlays non-zero values from override onto base and returns the
// result. Flags merge over the file, the file over the defaults.
func Merge(base, override Config) Config {
	out := base
	if override.Device != "" {
		out.Device = override.Device
	}
	if override.InputFormat != "" {
		out.InputFormat = override.InputFormat
	}
	if override.CaptureWidth != 0 {
		out.CaptureWidth = override.CaptureWidth
	}
	if override.CaptureHeight != 0 {
		out.CaptureHeight = override.CaptureHeight
	}
	if override.CaptureFPS != 0 {
		out.CaptureFPS = override.CaptureFPS
	}
	if override.Preset != "" {
		out.Preset = override.Preset
	}
	if override.Scheme != "" {
		out.Scheme = override.Scheme
	}
	if override.CellAspect != 0 {
		out.CellAspect = override.CellAspect
	}
	if override.FastInterval != 0 {
		out.FastInterval = override.FastInterval
	}
	if override.SlowInterval != 0 {
		out.SlowInterval = override.SlowInterval
	}
	if override.HideStatus {
		out.HideStatus = true
	}
	if override.LogFile != "" {
		out.LogFile = override.LogFile
	}
	return out
}

// Validate checks the merged configuration, suggesting close matches for
// misspelled preset and scheme names.
func (c Config) Validate() error {
	if _, err := ascii.LookupPalette(c.Preset); err != nil {
		return fmt.Errorf("%w%s", err, suggestion(c.Preset, ascii.PaletteNames()))
	}
	if _, err := ascii.LookupScheme(c.Scheme); err != nil {
		return fmt.Errorf("%w%s", err, suggestion(c.Scheme, ascii.SchemeNames()))
	}
	if c.CellAspect <= 0 {
		return fmt.Errorf("cell aspect must be positive, got %g", c.CellAspect)
	}
	if c.FastInterval <= 0 || c.SlowInterval <= 0 {
		return fmt.Errorf("frame intervals must be positive, got fast=%v slow=%v", c.FastInterval, c.SlowInterval)
	}
	if c.FastInterval > c.SlowInterval {
		return fmt.Errorf("fast interval %v exceeds slow interval %v", c.FastInterval, c.SlowInterval)
	}
	if c.CaptureWidth < 1 || c.CaptureHeight < 1 {
		return fmt.Errorf("capture resolution must be positive, got %dx%d", c.CaptureWidth, c.CaptureHeight)
	}
	return nil
}

// suggestion returns a ", did you mean X?" suffix when a close match for
// name exists among the candidates.
func suggestion(name string, candidates []string) string {
	matches := fuzzy.Find(name, candidates)
	if len(matches) == 0 {
		return ""
	}
	return fmt.Sprintf(", did you mean %q?", matches[0].Str)
}
