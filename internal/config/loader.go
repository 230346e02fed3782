package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded config violates a game invariant.
var ErrInvalidConfig = errors.New("invalid config")

const configFile = "invaders.yaml"

// LoadInvaders loads the game configuration.
// Search order: customPath -> ~/.invaders/configs/invaders.yaml -> ./configs/invaders.yaml -> embedded default.
// Files may be partial; missing keys keep their default values.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return InvadersConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return InvadersConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultInvadersYAML)
	if err != nil {
		return DefaultInvadersConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the hard-coded defaults and validates the result.
func parse(data []byte) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return InvadersConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return InvadersConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", "configs", filename)
}

// Validate checks the invariants the simulation relies on.
func (c InvadersConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be > 0, got %v", name, v))
		}
	}

	positive("screen.width", float64(c.Screen.Width))
	positive("screen.height", float64(c.Screen.Height))
	positive("ship.width", float64(c.Ship.Width))
	positive("ship.height", float64(c.Ship.Height))
	positive("ship.speed", c.Ship.Speed)
	positive("bullet.width", float64(c.Bullet.Width))
	positive("bullet.height", float64(c.Bullet.Height))
	positive("bullet.speed", c.Bullet.Speed)
	positive("alien.width", float64(c.Alien.Width))
	positive("alien.height", float64(c.Alien.Height))
	positive("alien.speed", c.Alien.Speed)
	positive("fleet.drop_speed", c.Fleet.DropSpeed)

	if c.Bullet.Allowed < 0 {
		errs = append(errs, fmt.Errorf("bullet.allowed must be >= 0, got %d", c.Bullet.Allowed))
	}
	if c.Ship.Limit < 0 {
		errs = append(errs, fmt.Errorf("ship.limit must be >= 0, got %d", c.Ship.Limit))
	}
	if c.Alien.Points < 0 {
		errs = append(errs, fmt.Errorf("alien.points must be >= 0, got %d", c.Alien.Points))
	}
	if c.Difficulty.SpeedupScale <= 1 {
		errs = append(errs, fmt.Errorf("difficulty.speedup_scale must be > 1, got %v", c.Difficulty.SpeedupScale))
	}
	if c.Difficulty.ScoreScale <= 1 {
		errs = append(errs, fmt.Errorf("difficulty.score_scale must be > 1, got %v", c.Difficulty.ScoreScale))
	}
	if c.Timing.HitPauseMS < 0 {
		errs = append(errs, fmt.Errorf("timing.hit_pause_ms must be >= 0, got %d", c.Timing.HitPauseMS))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
