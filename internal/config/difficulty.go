package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists all presets in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset converts a CLI value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch s {
	case "":
		return DifficultyNormal, nil
	case string(DifficultyEasy), string(DifficultyNormal), string(DifficultyHard):
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ship.Limit = 5
		cfg.Bullet.Allowed += 2
		cfg.Alien.Speed *= 0.75
		cfg.Difficulty.SpeedupScale = 1.05
	case DifficultyHard:
		cfg.Ship.Limit = 1
		cfg.Bullet.Allowed = max(cfg.Bullet.Allowed-1, 1)
		cfg.Alien.Speed *= 1.5
		cfg.Difficulty.SpeedupScale = 1.2
	}
}
