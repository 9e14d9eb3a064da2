package config

import "sort"

var Presets = map[string]*Config{
	"classic": DefaultConfig(),
	"calm": {
		Width: 60, Height: 20, FPS: 12, HueStep: 4, FrameHueStep: 1,
		Glyphs: GlyphConfig{Solid: "█", Fade: "░"},
		Wave: []ComponentConfig{
			{Amplitude: 3, SpaceDiv: 8, TimeDiv: 20},
			{Amplitude: 2, SpaceDiv: 5, TimeDiv: -30},
		},
	},
	"storm": {
		Width: 80, Height: 24, FPS: 30, HueStep: 9, FrameHueStep: 4,
		Glyphs: GlyphConfig{Solid: "█", Fade: "▒"},
		Wave: []ComponentConfig{
			{Amplitude: 7, SpaceDiv: 4, TimeDiv: 6},
			{Amplitude: 4, SpaceDiv: 3, TimeDiv: -9},
			{Amplitude: 5, SpaceDiv: 6, TimeDiv: 5, Cos: true},
		},
	},
	"ribbon": {
		Width: 60, Height: 20, FPS: 20, HueStep: 6, FrameHueStep: 2,
		Glyphs: GlyphConfig{Solid: "█", Fade: "▒"},
		Wave: []ComponentConfig{
			{Amplitude: 6, SpaceDiv: 9, TimeDiv: 12},
		},
	},
}

// GetPreset returns a copy, so callers can layer overrides on top
// without mutating the shared table.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	out := *cfg
	out.Wave = make([]ComponentConfig, len(cfg.Wave))
	copy(out.Wave, cfg.Wave)
	return &out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
