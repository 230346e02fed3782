// Package config provides YAML-based game configuration loading and
// difficulty presets for the invaders game.
package config

// InvadersConfig contains all tunable parameters of the game.
type InvadersConfig struct {
	Screen     ScreenConfig     `yaml:"screen" msgpack:"screen"`
	Ship       ShipConfig       `yaml:"ship" msgpack:"ship"`
	Bullet     BulletConfig     `yaml:"bullet" msgpack:"bullet"`
	Alien      AlienConfig      `yaml:"alien" msgpack:"alien"`
	Fleet      FleetConfig      `yaml:"fleet" msgpack:"fleet"`
	Difficulty DifficultyConfig `yaml:"difficulty" msgpack:"difficulty"`
	Timing     TimingConfig     `yaml:"timing" msgpack:"timing"`
	Button     ButtonConfig     `yaml:"button" msgpack:"button"`
}

// ScreenConfig defines the logical playfield size in pixels.
type ScreenConfig struct {
	Width  int `yaml:"width" msgpack:"width"`
	Height int `yaml:"height" msgpack:"height"`
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Width  int     `yaml:"width" msgpack:"width"`
	Height int     `yaml:"height" msgpack:"height"`
	Speed  float64 `yaml:"speed" msgpack:"speed"`
	Limit  int     `yaml:"limit" msgpack:"limit"` // Spare ships at session start
}

// BulletConfig defines player projectiles.
type BulletConfig struct {
	Width   int     `yaml:"width" msgpack:"width"`
	Height  int     `yaml:"height" msgpack:"height"`
	Speed   float64 `yaml:"speed" msgpack:"speed"`
	Allowed int     `yaml:"allowed" msgpack:"allowed"` // Max bullets on screen
}

// AlienConfig defines a single fleet member.
type AlienConfig struct {
	Width  int     `yaml:"width" msgpack:"width"`
	Height int     `yaml:"height" msgpack:"height"`
	Speed  float64 `yaml:"speed" msgpack:"speed"`
	Points int     `yaml:"points" msgpack:"points"`
}

// FleetConfig defines collective fleet movement.
type FleetConfig struct {
	DropSpeed float64 `yaml:"drop_speed" msgpack:"drop_speed"`
}

// DifficultyConfig defines how the game speeds up after each cleared fleet.
type DifficultyConfig struct {
	SpeedupScale float64 `yaml:"speedup_scale" msgpack:"speedup_scale"` // Multiplier for all speeds
	ScoreScale   float64 `yaml:"score_scale" msgpack:"score_scale"`     // Multiplier for alien points
}

// TimingConfig defines real-time durations.
type TimingConfig struct {
	HitPauseMS int `yaml:"hit_pause_ms" msgpack:"hit_pause_ms"` // Freeze after losing a ship
	KeyHoldMS  int `yaml:"key_hold_ms" msgpack:"key_hold_ms"`   // Terminal key-up synthesis window
}

// ButtonConfig defines the start control shown while no game is running.
type ButtonConfig struct {
	Width  int    `yaml:"width" msgpack:"width"`
	Height int    `yaml:"height" msgpack:"height"`
	Label  string `yaml:"label" msgpack:"label"`
}

// HitPauseTicks converts the hit pause to simulation ticks at the given rate.
func (c InvadersConfig) HitPauseTicks(tickRate int) int {
	if tickRate <= 0 || c.Timing.HitPauseMS <= 0 {
		return 0
	}
	return c.Timing.HitPauseMS * tickRate / 1000
}

// KeyHoldTicks converts the key hold window to ticks, never less than one.
func (c InvadersConfig) KeyHoldTicks(tickRate int) int {
	ticks := c.Timing.KeyHoldMS * tickRate / 1000
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}
