package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the built-in configuration.
// Used when the embedded YAML cannot be parsed.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Screen: ScreenConfig{
			Width:  1200,
			Height: 800,
		},
		Ship: ShipConfig{
			Width:  60,
			Height: 48,
			Speed:  6.0,
			Limit:  3,
		},
		Bullet: BulletConfig{
			Width:   3,
			Height:  15,
			Speed:   10.0,
			Allowed: 3,
		},
		Alien: AlienConfig{
			Width:  60,
			Height: 58,
			Speed:  2.0,
			Points: 50,
		},
		Fleet: FleetConfig{
			DropSpeed: 20,
		},
		Difficulty: DifficultyConfig{
			SpeedupScale: 1.1,
			ScoreScale:   1.5,
		},
		Timing: TimingConfig{
			HitPauseMS: 500,
			KeyHoldMS:  150,
		},
		Button: ButtonConfig{
			Width:  200,
			Height: 50,
			Label:  "Play",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
