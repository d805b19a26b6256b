package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Window     WindowConfig   `yaml:"window"`
	Data       DataConfig     `yaml:"data"`
	Playback   PlaybackConfig `yaml:"playback"`
	Sprite     SpriteConfig   `yaml:"sprite"`
	Background Color          `yaml:"background"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type DataConfig struct {
	Dir      string `yaml:"dir"`
	ListFile string `yaml:"list_file"`
	Watch    bool   `yaml:"watch"`
}

type PlaybackConfig struct {
	Autoplay  bool    `yaml:"autoplay"`
	Speed     float64 `yaml:"speed"`
	SpeedStep float64 `yaml:"speed_step"`
	MinSpeed  float64 `yaml:"min_speed"`
	MaxSpeed  float64 `yaml:"max_speed"`
}

// SpriteConfig places newly selected sprites. Velocity is in units per ms.
type SpriteConfig struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	VelocityX float64 `yaml:"velocity_x"`
	VelocityY float64 `yaml:"velocity_y"`
}

// Default is a 700x500 white window with the sprite at (300, 100).
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Animated Sprite Viewer",
			Width:  700,
			Height: 500,
		},
		Data: DataConfig{
			Dir:      "data/sprite_types",
			ListFile: "sprite_type_list.xml",
		},
		Playback: PlaybackConfig{
			Autoplay:  true,
			Speed:     1,
			SpeedStep: 0.10,
			MinSpeed:  0.05,
			MaxSpeed:  20,
		},
		Sprite:     SpriteConfig{X: 300, Y: 100},
		Background: Color{Color: color.White},
	}
}

// Load reads a YAML config over the defaults. A missing file is not an error
// when optional is set.
func Load(path string, optional bool) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Data.Dir == "" || c.Data.ListFile == "":
		return fmt.Errorf("data dir and list_file are required")
	case c.Playback.SpeedStep <= 0 || c.Playback.SpeedStep > 1:
		return fmt.Errorf("speed_step %v must be in (0, 1]", c.Playback.SpeedStep)
	case c.Playback.MinSpeed <= 0:
		return fmt.Errorf("min_speed %v must be positive", c.Playback.MinSpeed)
	case c.Playback.MaxSpeed < c.Playback.MinSpeed:
		return fmt.Errorf("max_speed %v is below min_speed %v", c.Playback.MaxSpeed, c.Playback.MinSpeed)
	case c.Playback.Speed < c.Playback.MinSpeed || c.Playback.Speed > c.Playback.MaxSpeed:
		return fmt.Errorf("speed %v is outside [%v, %v]", c.Playback.Speed, c.Playback.MinSpeed, c.Playback.MaxSpeed)
	}
	return nil
}

// Color is a "#rrggbb" YAML scalar.
type Color struct {
	color.Color
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := colorful.Hex(value.Value)
	if err != nil {
		return fmt.Errorf("invalid color %q: %w", value.Value, err)
	}
	r, g, b := parsed.RGB255()
	c.Color = color.NRGBA{R: r, G: g, B: b, A: 0xff}
	return nil
}

func (c Color) MarshalYAML() (any, error) {
	if c.Color == nil {
		return "", nil
	}
	r, g, b, _ := c.Color.RGBA()
	return colorful.Color{R: float64(r) / 0xffff, G: float64(g) / 0xffff, B: float64(b) / 0xffff}.Hex(), nil
}
