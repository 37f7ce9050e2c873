// Package config loads the editor's settings file.
package config

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/beatforge/chartedit/core/divisor"
)

// Config is the on-disk editor configuration. Zero-valued fields take the
// defaults from Default.
type Config struct {
	WindowWidth     int     `yaml:"window_width"`
	WindowHeight    int     `yaml:"window_height"`
	LogLevel        string  `yaml:"log_level"`
	Divisor         int     `yaml:"divisor"`
	GridShape       string  `yaml:"grid_shape"` // "linear" or "circular"
	BeatLength      float64 `yaml:"beat_length"`
	DistancePerBeat float64 `yaml:"distance_per_beat"`

	// Palette overrides the tick colour for individual divisors, keyed by
	// divisor value, "#RRGGBB" or "#RRGGBBAA".
	Palette map[int]string `yaml:"palette"`
}

func Default() Config {
	return Config{
		WindowWidth:     1024,
		WindowHeight:    768,
		LogLevel:        "INFO",
		Divisor:         4,
		GridShape:       "circular",
		BeatLength:      500, // 120 BPM
		DistancePerBeat: 120,
	}
}

// Load reads and validates the settings at path. A missing file yields the
// defaults without error; a malformed or invalid file does not.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if !divisor.IsValid(c.Divisor) {
		return fmt.Errorf("invalid divisor %d (valid: %v)", c.Divisor, divisor.ValidDivisors)
	}
	switch c.GridShape {
	case "linear", "circular":
	default:
		return fmt.Errorf("unknown grid_shape %q", c.GridShape)
	}
	if c.BeatLength <= 0 {
		return fmt.Errorf("beat_length must be positive, got %v", c.BeatLength)
	}
	if c.DistancePerBeat <= 0 {
		return fmt.Errorf("distance_per_beat must be positive, got %v", c.DistancePerBeat)
	}
	for d, hex := range c.Palette {
		if !divisor.IsValid(d) {
			return fmt.Errorf("palette key %d is not a valid divisor", d)
		}
		if _, err := ParseColour(hex); err != nil {
			return fmt.Errorf("palette[%d]: %w", d, err)
		}
	}
	return nil
}

// PaletteColours returns the parsed palette overrides. Only call after a
// successful Load; parse failures here indicate the config was mutated.
func (c Config) PaletteColours() map[int]color.RGBA {
	out := make(map[int]color.RGBA, len(c.Palette))
	for d, hex := range c.Palette {
		col, err := ParseColour(hex)
		if err != nil {
			panic(fmt.Sprintf("config: palette[%d]: %v", d, err))
		}
		out[d] = col
	}
	return out
}

// ParseColour parses "#RRGGBB" or "#RRGGBBAA".
func ParseColour(s string) (color.RGBA, error) {
	if len(s) == 0 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("colour %q must start with '#'", s)
	}
	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("colour %q must be #RRGGBB or #RRGGBBAA", s)
	}
	var b [4]byte
	b[3] = 0xff
	for i := 0; i < len(hex)/2; i++ {
		hi, ok1 := hexVal(hex[2*i])
		lo, ok2 := hexVal(hex[2*i+1])
		if !ok1 || !ok2 {
			return color.RGBA{}, fmt.Errorf("colour %q has invalid hex digits", s)
		}
		b[i] = hi<<4 | lo
	}
	return color.RGBA{R: b[0], G: b[1], B: b[2], A: b[3]}, nil
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
