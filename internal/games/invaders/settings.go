package invaders

import "github.com/vovakirdan/tui-invaders/internal/config"

// Settings holds the tunable parameters of a running game.
// Static values come straight from config; dynamic values are reset at the
// start of every session and scaled after every cleared fleet.
type Settings struct {
	base config.InvadersConfig

	// Static
	ScreenW, ScreenH float64
	ShipW, ShipH     float64
	BulletW, BulletH float64
	AlienW, AlienH   float64
	BulletsAllowed   int
	ShipLimit        int
	FleetDropSpeed   float64
	SpeedupScale     float64
	ScoreScale       float64

	// Dynamic
	ShipSpeed   float64
	BulletSpeed float64
	AlienSpeed  float64
	AlienPoints int
}

// NewSettings builds settings from a validated config.
func NewSettings(cfg config.InvadersConfig) *Settings {
	s := &Settings{
		base:           cfg,
		ScreenW:        float64(cfg.Screen.Width),
		ScreenH:        float64(cfg.Screen.Height),
		ShipW:          float64(cfg.Ship.Width),
		ShipH:          float64(cfg.Ship.Height),
		BulletW:        float64(cfg.Bullet.Width),
		BulletH:        float64(cfg.Bullet.Height),
		AlienW:         float64(cfg.Alien.Width),
		AlienH:         float64(cfg.Alien.Height),
		BulletsAllowed: cfg.Bullet.Allowed,
		ShipLimit:      cfg.Ship.Limit,
		FleetDropSpeed: cfg.Fleet.DropSpeed,
		SpeedupScale:   cfg.Difficulty.SpeedupScale,
		ScoreScale:     cfg.Difficulty.ScoreScale,
	}
	s.InitializeDynamicSettings()
	return s
}

// Config returns the configuration the settings were built from.
func (s *Settings) Config() config.InvadersConfig {
	return s.base
}

// InitializeDynamicSettings restores speeds and alien points to their base values.
// The fleet direction lives on the Fleet and is reset alongside by the session.
func (s *Settings) InitializeDynamicSettings() {
	s.ShipSpeed = s.base.Ship.Speed
	s.BulletSpeed = s.base.Bullet.Speed
	s.AlienSpeed = s.base.Alien.Speed
	s.AlienPoints = s.base.Alien.Points
}

// IncreaseSpeed scales all speeds and the alien point value. Called once per cleared fleet.
func (s *Settings) IncreaseSpeed() {
	s.ShipSpeed *= s.SpeedupScale
	s.BulletSpeed *= s.SpeedupScale
	s.AlienSpeed *= s.SpeedupScale
	s.AlienPoints = int(float64(s.AlienPoints) * s.ScoreScale)
}
