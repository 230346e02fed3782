package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML InvadersConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if fromYAML != DefaultInvadersConfig() {
		t.Errorf("embedded YAML = %+v\nhardcoded = %+v", fromYAML, DefaultInvadersConfig())
	}
	if err := fromYAML.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("screen:\n  width: 800\n  height: 600\nalien:\n  width: 20\n  height: 20\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadInvaders(path)
	if err != nil {
		t.Fatalf("LoadInvaders() failed: %v", err)
	}
	if cfg.Screen.Width != 800 || cfg.Screen.Height != 600 {
		t.Errorf("screen = %+v, expected 800x600", cfg.Screen)
	}
	if cfg.Alien.Width != 20 || cfg.Alien.Height != 20 {
		t.Errorf("alien size = %dx%d, expected 20x20", cfg.Alien.Width, cfg.Alien.Height)
	}
	// Untouched keys keep defaults
	if cfg.Alien.Points != 50 || cfg.Ship.Limit != 3 {
		t.Errorf("partial config should keep defaults, got points=%d limit=%d", cfg.Alien.Points, cfg.Ship.Limit)
	}
}

func TestLoadCustomMissing(t *testing.T) {
	_, err := LoadInvaders(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped ErrNotExist, got %v", err)
	}
}

func TestLoadCustomInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := []byte("difficulty:\n  speedup_scale: 0.9\nship:\n  speed: -1\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadInvaders(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*InvadersConfig)
		valid  bool
	}{
		{"defaults", func(*InvadersConfig) {}, true},
		{"zero bullets allowed", func(c *InvadersConfig) { c.Bullet.Allowed = 0 }, true},
		{"zero ship limit", func(c *InvadersConfig) { c.Ship.Limit = 0 }, true},
		{"zero alien speed", func(c *InvadersConfig) { c.Alien.Speed = 0 }, false},
		{"speedup not above one", func(c *InvadersConfig) { c.Difficulty.SpeedupScale = 1 }, false},
		{"negative pause", func(c *InvadersConfig) { c.Timing.HitPauseMS = -1 }, false},
		{"zero screen", func(c *InvadersConfig) { c.Screen.Width = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultInvadersConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestTickConversions(t *testing.T) {
	cfg := DefaultInvadersConfig()

	if got := cfg.HitPauseTicks(60); got != 30 {
		t.Errorf("HitPauseTicks(60) = %d, expected 30", got)
	}
	if got := cfg.HitPauseTicks(0); got != 0 {
		t.Errorf("HitPauseTicks(0) = %d, expected 0", got)
	}
	if got := cfg.KeyHoldTicks(60); got != 9 {
		t.Errorf("KeyHoldTicks(60) = %d, expected 9", got)
	}
	cfg.Timing.KeyHoldMS = 1
	if got := cfg.KeyHoldTicks(60); got != 1 {
		t.Errorf("KeyHoldTicks should never drop below 1, got %d", got)
	}
}

func TestPresets(t *testing.T) {
	for _, p := range Presets() {
		cfg := DefaultInvadersConfig()
		ApplyPreset(&cfg, p)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s produced invalid config: %v", p, err)
		}
	}

	cfg := DefaultInvadersConfig()
	ApplyPreset(&cfg, DifficultyNormal)
	if cfg != DefaultInvadersConfig() {
		t.Error("normal preset should not modify the config")
	}

	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}
