package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/wavelab/internal/render"
	"github.com/san-kum/wavelab/internal/wave"
)

const (
	DefaultWidth        = 60
	DefaultHeight       = 20
	DefaultFPS          = 20
	DefaultHueStep      = 6
	DefaultFrameHueStep = 2
)

type Config struct {
	Width        int               `yaml:"width"`
	Height       int               `yaml:"height"`
	FPS          int               `yaml:"fps"`
	HueStep      int               `yaml:"hue_step"`
	FrameHueStep int               `yaml:"frame_hue_step"`
	Glyphs       GlyphConfig       `yaml:"glyphs"`
	Wave         []ComponentConfig `yaml:"wave"`
}

type GlyphConfig struct {
	Solid string `yaml:"solid"`
	Fade  string `yaml:"fade"`
}

type ComponentConfig struct {
	Amplitude float64 `yaml:"amplitude"`
	SpaceDiv  float64 `yaml:"space_div"`
	TimeDiv   float64 `yaml:"time_div"`
	Cos       bool    `yaml:"cos,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		FPS:          DefaultFPS,
		HueStep:      DefaultHueStep,
		FrameHueStep: DefaultFrameHueStep,
		Glyphs:       GlyphConfig{Solid: "█", Fade: "▒"},
		Wave: []ComponentConfig{
			{Amplitude: 5, SpaceDiv: 5, TimeDiv: 10},
			{Amplitude: 3, SpaceDiv: 3, TimeDiv: -15},
			{Amplitude: 4, SpaceDiv: 7, TimeDiv: 8, Cos: true},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Renderer builds a frame renderer from the configured dimensions,
// glyphs, and wave components.
func (c *Config) Renderer() *render.Renderer {
	components := make([]wave.Component, len(c.Wave))
	for i, w := range c.Wave {
		components[i] = wave.Component{
			Amplitude: w.Amplitude,
			SpaceDiv:  w.SpaceDiv,
			TimeDiv:   w.TimeDiv,
			Cos:       w.Cos,
		}
	}
	return &render.Renderer{
		Width:        c.Width,
		Height:       c.Height,
		HueStep:      c.HueStep,
		FrameHueStep: c.FrameHueStep,
		Glyphs:       render.Glyphs{Solid: c.Glyphs.Solid, Fade: c.Glyphs.Fade, Blank: " "},
		Field:        &wave.Field{Height: c.Height, Components: components},
	}
}
