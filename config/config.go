// Package config loads the yaml settings shared by the solitaire front ends.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

type Config struct {
	Window         WindowConfig `yaml:"window"`
	Tile           TileConfig   `yaml:"tile"`
	Timing         TimingConfig `yaml:"timing"`
	Colors         ColorsConfig `yaml:"colors"`
	Seed           int64        `yaml:"seed"`
	AutoplayScript string       `yaml:"autoplay_script"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// TileConfig sizes tiles on screen in pixels.
type TileConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Gap         float64 `yaml:"gap"`
	LayerOffset float64 `yaml:"layer_offset"`
	Margin      float64 `yaml:"margin"`
}

type TimingConfig struct {
	TPS    int `yaml:"tps"`
	HintMS int `yaml:"hint_ms"`
	FadeMS int `yaml:"fade_ms"`
}

func (t TimingConfig) Hint() time.Duration {
	return time.Duration(t.HintMS) * time.Millisecond
}

func (t TimingConfig) Fade() time.Duration {
	return time.Duration(t.FadeMS) * time.Millisecond
}

type ColorsConfig struct {
	Background Color `yaml:"background"`
	Face       Color `yaml:"face"`
	Blocked    Color `yaml:"blocked"`
	Selected   Color `yaml:"selected"`
	Hint       Color `yaml:"hint"`
	Border     Color `yaml:"border"`
	Text       Color `yaml:"text"`
	HUD        Color `yaml:"hud"`
}

// Default returns the embedded settings.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic(fmt.Sprintf("config: embedded default.yaml: %v", err))
	}
	return cfg
}

// Load reads path over the defaults, so a file only needs the fields it
// changes. An empty or missing path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the renderer and scheduler cannot work with.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Tile.Width <= 0 || c.Tile.Height <= 0 {
		errs = append(errs, fmt.Errorf("tile size %gx%g must be positive", c.Tile.Width, c.Tile.Height))
	}
	if c.Tile.Gap < 0 || c.Tile.LayerOffset < 0 || c.Tile.Margin < 0 {
		errs = append(errs, errors.New("tile gap, layer_offset and margin must not be negative"))
	}
	if c.Timing.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", c.Timing.TPS))
	}
	if c.Timing.HintMS < 0 || c.Timing.FadeMS < 0 {
		errs = append(errs, errors.New("hint_ms and fade_ms must not be negative"))
	}
	return errors.Join(errs...)
}

// Color is an RGBA color written as #rrggbb or #rrggbbaa.
type Color struct {
	color.RGBA
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Color) MarshalYAML() (any, error) {
	return c.Hex(), nil
}

// Hex formats c as #rrggbb, adding the alpha byte when it is not opaque.
func (c Color) Hex() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("invalid color format: %s", s)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(hex[start:start+2], 16, 8)
		return uint8(v), err
	}

	var rgba [4]uint8
	rgba[3] = 0xff
	for i := 0; i < len(hex)/2; i++ {
		v, err := parse(i * 2)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %s: %w", s, err)
		}
		rgba[i] = v
	}
	return Color{color.RGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}}, nil
}
