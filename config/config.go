// Package config loads the optional lunar-clock.yaml and resolves it into runtime settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/lunar-clock/engine"
	"github.com/lixenwraith/lunar-clock/flip"
	"github.com/lixenwraith/lunar-clock/page"
	"github.com/lixenwraith/lunar-clock/render"
)

// DefaultFile is looked up in the working directory when no path is given
const DefaultFile = "lunar-clock.yaml"

// ErrInvalid marks a configuration value outside its allowed range
var ErrInvalid = errors.New("invalid config")

// Config represents the optional lunar-clock.yaml configuration.
type Config struct {
	Animation AnimationConfig `yaml:"animation"`
	Palette   PaletteConfig   `yaml:"palette"`
	Audio     AudioConfig     `yaml:"audio"`
	Terminal  TerminalConfig  `yaml:"terminal"`
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
}

// AnimationConfig controls frame cadence and flip length.
type AnimationConfig struct {
	FPS        int     `yaml:"fps"`
	FlipFrames int     `yaml:"flip_frames"`
	AngleStep  float64 `yaml:"angle_step"`
	Ornament   bool    `yaml:"ornament"`
}

// PaletteConfig holds page colors as #rrggbb strings.
type PaletteConfig struct {
	Primary string `yaml:"primary,omitempty"`
	Accent  string `yaml:"accent,omitempty"`
	Ink     string `yaml:"ink,omitempty"`
	Paper   string `yaml:"paper,omitempty"`
}

// AudioConfig contains sound settings.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// TerminalConfig contains terminal host settings.
type TerminalConfig struct {
	SnapshotDir string `yaml:"snapshot_dir,omitempty"`
}

// ServerConfig contains preview server settings.
type ServerConfig struct {
	Addr string `yaml:"addr,omitempty"`
}

// LogConfig selects the log destination and level.
type LogConfig struct {
	File  string `yaml:"file,omitempty"`
	Level string `yaml:"level,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Animation: AnimationConfig{
			FPS:        engine.DefaultFPS,
			FlipFrames: flip.DefaultDuration,
			AngleStep:  engine.DefaultAngleStep,
			Ornament:   true,
		},
		Palette: PaletteConfig{
			Primary: "#b41414",
			Accent:  "#c8a000",
			Ink:     "#643200",
			Paper:   "#faf5eb",
		},
		Audio:    AudioConfig{Enabled: true, Volume: 0.5},
		Terminal: TerminalConfig{SnapshotDir: "."},
		Server:   ServerConfig{Addr: ":8080"},
		Log:      LogConfig{Level: "info"},
	}
}

// LoadOptional reads the config file at path if present, layered over defaults.
// An empty path means DefaultFile in the working directory.
func LoadOptional(path string) (*Config, error) {
	if path == "" {
		path = DefaultFile
	}
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and color syntax.
func (c *Config) Validate() error {
	if c.Animation.FPS <= 0 || c.Animation.FPS > 240 {
		return fmt.Errorf("%w: animation.fps must be in 1..240 (got %d)", ErrInvalid, c.Animation.FPS)
	}
	if c.Animation.FlipFrames <= 0 {
		return fmt.Errorf("%w: animation.flip_frames must be positive (got %d)", ErrInvalid, c.Animation.FlipFrames)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume must be in 0..1 (got %g)", ErrInvalid, c.Audio.Volume)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if _, err := c.Palette.Resolve(); err != nil {
		return err
	}
	return nil
}

// Resolve converts the hex strings into a page palette, empty entries keep defaults
func (p PaletteConfig) Resolve() (page.Palette, error) {
	pal := page.DefaultPalette()
	entries := []struct {
		key string
		val string
		dst *render.RGB
	}{
		{"primary", p.Primary, &pal.Primary},
		{"accent", p.Accent, &pal.Accent},
		{"ink", p.Ink, &pal.Ink},
		{"paper", p.Paper, &pal.Paper},
	}
	for _, e := range entries {
		v := strings.TrimSpace(e.val)
		if v == "" {
			continue
		}
		rgb, err := parseHex(v)
		if err != nil {
			return page.Palette{}, fmt.Errorf("%w: palette.%s: %v", ErrInvalid, e.key, err)
		}
		*e.dst = rgb
	}
	return pal, nil
}

func parseHex(s string) (render.RGB, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return render.RGB{}, err
	}
	r, g, b := c.Clamped().RGB255()
	return render.RGB{R: r, G: g, B: b}, nil
}

// Engine builds the engine settings from the validated config.
func (c *Config) Engine() (engine.Config, error) {
	pal, err := c.Palette.Resolve()
	if err != nil {
		return engine.Config{}, err
	}
	return engine.Config{
		FPS:        c.Animation.FPS,
		FlipFrames: c.Animation.FlipFrames,
		AngleStep:  c.Animation.AngleStep,
		Palette:    pal,
		Page:       page.Options{Ornament: c.Animation.Ornament},
	}, nil
}
