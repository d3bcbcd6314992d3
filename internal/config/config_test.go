package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Demo != "groei" {
		t.Errorf("expected demo groei, got %s", cfg.Demo)
	}
	if cfg.Start < 1 {
		t.Error("start should be positive")
	}
	if cfg.Generations < 1 {
		t.Error("generations should be positive")
	}
	if err := cfg.Params().Validate(); err != nil {
		t.Errorf("default params should validate: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("groei", "klassiek")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.K != 3 {
		t.Errorf("expected k 3, got %d", cfg.K)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("groei", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "klassiek"); cfg != nil {
		t.Error("expected nil for nonexistent demo")
	}
}

func TestListPresets(t *testing.T) {
	if presets := ListPresets("tegels"); len(presets) == 0 {
		t.Error("expected presets for tegels")
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent demo")
	}
}

func TestPresetsValidate(t *testing.T) {
	for demoName, presets := range Presets {
		for name, cfg := range presets {
			if err := cfg.Params().Validate(); err != nil {
				t.Errorf("preset %s/%s invalid: %v", demoName, name, err)
			}
		}
	}
}

func TestLoadSaveRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "groeilab.yaml")

	cfg := DefaultConfig()
	cfg.K = 5
	cfg.IncludeParents = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.K != 5 {
		t.Errorf("expected k 5, got %d", loaded.K)
	}
	if !loaded.IncludeParents {
		t.Error("expected include_parents true")
	}
}

func TestClampFrameMs(t *testing.T) {
	cfg := DefaultConfig()

	cfg.FrameMs = 10
	if got := cfg.ClampFrameMs(); got != MinFrameMs {
		t.Errorf("expected clamp to %d, got %d", MinFrameMs, got)
	}

	cfg.FrameMs = 9000
	if got := cfg.ClampFrameMs(); got != MaxFrameMs {
		t.Errorf("expected clamp to %d, got %d", MaxFrameMs, got)
	}
}
