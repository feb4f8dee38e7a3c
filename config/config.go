// Package config loads runtime settings from TOML with environment overrides
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/advent/terminal"
)

// ErrInvalid reports a setting outside its allowed range
var ErrInvalid = errors.New("invalid config")

// Environment overrides
const (
	EnvAudioEnabled  = "ADVENT_AUDIO_ENABLED"
	EnvLogLevel      = "ADVENT_LOG_LEVEL"
	EnvPhaseDuration = "ADVENT_PHASE_DURATION"
)

type Config struct {
	Display    DisplayConfig    `toml:"display"`
	Transition TransitionConfig `toml:"transition"`
	Audio      AudioConfig      `toml:"audio"`
	Logging    LoggingConfig    `toml:"logging"`
}

type DisplayConfig struct {
	FPS          int    `toml:"fps"`
	WipeGlyph    string `toml:"wipe_glyph"` // Single character
	WipeColor    string `toml:"wipe_color"` // #rrggbb
	DebugOverlay bool   `toml:"debug_overlay"`
	Mouse        bool   `toml:"mouse"`
}

type TransitionConfig struct {
	PhaseDuration float64 `toml:"phase_duration"` // Seconds per wipe half
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // 0.0-1.0
}

type LoggingConfig struct {
	Enabled bool   `toml:"enabled"`
	Level   string `toml:"level"`
	Format  string `toml:"format"` // "json" or "console"
	Dir     string `toml:"dir"`
	File    string `toml:"file"`
	MaxSize int64  `toml:"max_size"` // Bytes before the file is rotated at startup
}

// Load reads path over the defaults, applies environment overrides and validates
// An empty path skips the file
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			FPS:       30,
			WipeGlyph: "O",
			WipeColor: "#ffffff",
			Mouse:     true,
		},
		Transition: TransitionConfig{
			PhaseDuration: 1.0,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
			Format:  "json",
			Dir:     "logs",
			File:    "advent.log",
			MaxSize: 10 * 1024 * 1024,
		},
	}
}

// ApplyEnv overrides settings from the environment through lookup
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvAudioEnabled); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvAudioEnabled, v, err)
		}
		c.Audio.Enabled = b
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
		c.Logging.Enabled = true
	}
	if v, ok := lookup(EnvPhaseDuration); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvPhaseDuration, v, err)
		}
		c.Transition.PhaseDuration = f
	}
	return nil
}

// Validate checks every setting
func (c *Config) Validate() error {
	if c.Display.FPS <= 0 || c.Display.FPS > 240 {
		return fmt.Errorf("%w: display.fps %d not in 1..240", ErrInvalid, c.Display.FPS)
	}
	if utf8.RuneCountInString(c.Display.WipeGlyph) != 1 {
		return fmt.Errorf("%w: display.wipe_glyph %q must be one character", ErrInvalid, c.Display.WipeGlyph)
	}
	if _, err := terminal.ParseHex(c.Display.WipeColor); err != nil {
		return fmt.Errorf("%w: display.wipe_color: %v", ErrInvalid, err)
	}
	if !(c.Transition.PhaseDuration > 0) || c.Transition.PhaseDuration > 60 {
		return fmt.Errorf("%w: transition.phase_duration %v not in (0, 60]", ErrInvalid, c.Transition.PhaseDuration)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume %v not in [0, 1]", ErrInvalid, c.Audio.Volume)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalid, c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalid, c.Logging.Format)
	}
	if c.Logging.Enabled && c.Logging.File == "" {
		return fmt.Errorf("%w: logging.file is empty", ErrInvalid)
	}
	return nil
}

// FrameInterval returns the ticker period for the configured frame rate
func (d DisplayConfig) FrameInterval() time.Duration {
	if d.FPS <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(d.FPS)
}

// Glyph returns the wipe glyph, 'O' when unset
func (d DisplayConfig) Glyph() rune {
	r, _ := utf8.DecodeRuneInString(d.WipeGlyph)
	if r == utf8.RuneError {
		return 'O'
	}
	return r
}

// Color returns the wipe color, white when unparsable
func (d DisplayConfig) Color() terminal.RGB {
	c, err := terminal.ParseHex(d.WipeColor)
	if err != nil {
		return terminal.RGBWhite
	}
	return c
}
