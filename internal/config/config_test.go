package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width != 60 || cfg.Height != 20 {
		t.Errorf("expected 60x20 grid, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.FPS <= 0 {
		t.Error("fps should be positive")
	}
	if len(cfg.Wave) != 3 {
		t.Errorf("expected 3 wave components, got %d", len(cfg.Wave))
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("storm")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Width != 80 {
		t.Errorf("expected width 80, got %d", cfg.Width)
	}
}

func TestGetPresetReturnsCopy(t *testing.T) {
	first := GetPreset("storm")
	first.FPS = 99
	first.Wave[0].Amplitude = 42

	second := GetPreset("storm")
	if second.FPS == 99 {
		t.Error("mutating a preset should not affect the shared table")
	}
	if second.Wave[0].Amplitude == 42 {
		t.Error("preset wave components should not be shared")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Error("expected presets")
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] >= presets[i] {
			t.Error("presets should be sorted")
		}
	}
}

func TestLoadSaveRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wave.yaml")

	cfg := DefaultConfig()
	cfg.FPS = 45
	cfg.Wave[0].Amplitude = 9

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.FPS != 45 {
		t.Errorf("expected fps 45, got %d", loaded.FPS)
	}
	if loaded.Wave[0].Amplitude != 9 {
		t.Errorf("expected amplitude 9, got %f", loaded.Wave[0].Amplitude)
	}
}

func TestRendererFromConfig(t *testing.T) {
	r := DefaultConfig().Renderer()

	if r.Width != 60 || r.Height != 20 {
		t.Errorf("expected 60x20 renderer, got %dx%d", r.Width, r.Height)
	}
	if len(r.Field.Components) != 3 {
		t.Errorf("expected 3 field components, got %d", len(r.Field.Components))
	}
	if r.Glyphs.Blank != " " {
		t.Error("blank glyph should be a space")
	}
}
