// Package invaders implements the fleet shooter: a ship at the bottom of the
// playfield fires at a fleet that sweeps sideways and drops at every edge.
//
// The simulation runs in fixed logical pixels and advances one tick per Step.
// It has no clock of its own; the hit pause is counted in ticks.
package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// GameID is the registry and score log identifier.
const GameID = "invaders"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset = config.DifficultyNormal

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names select normal.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = config.DifficultyNormal
	}
	difficultyPreset = p
}

// LoadConfig loads the configuration the CLI selected and applies the preset.
func LoadConfig() (config.InvadersConfig, error) {
	return loadConfig(difficultyPreset)
}

// LoadConfigFor loads the configuration with the named preset instead of the
// process-wide one. SSH sessions pick their own difficulty.
func LoadConfigFor(preset string) (config.InvadersConfig, error) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return config.InvadersConfig{}, err
	}
	return loadConfig(p)
}

func loadConfig(p config.DifficultyPreset) (config.InvadersConfig, error) {
	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		return config.InvadersConfig{}, err
	}
	config.ApplyPreset(&cfg, p)
	return cfg, nil
}

// Difficulty returns the name of the process-wide preset.
func Difficulty() string {
	return string(difficultyPreset)
}

func init() {
	registry.Register(GameID, func() registry.Game { return New() })
}

var (
	_ registry.Game            = (*Game)(nil)
	_ registry.HighScoreSeeder = (*Game)(nil)
	_ registry.PointerReporter = (*Game)(nil)
	_ registry.Resizer         = (*Game)(nil)
)

// Game is one process-level invaders game: a ship, a fleet and the stats
// of the current (or last) session.
type Game struct {
	fixed *config.InvadersConfig // Set by NewWithConfig; skips loading

	cfg      config.InvadersConfig
	runtime  core.RuntimeConfig
	settings *Settings
	stats    *GameStats
	ship     *Ship
	fleet    *Fleet
	bullets  []Bullet
	button   Button
	view     Viewport

	tick       uint64
	pauseTicks int  // Ticks left in the post-hit freeze
	beaten     bool // High score already announced this session
	events     []core.GameEvent
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.InvadersConfig) *Game {
	return &Game{fixed: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Alien Invasion"
}

// Reset builds a fresh inactive game with a fleet waiting behind the start button.
// The high score survives a Reset.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime

	var cfg config.InvadersConfig
	if g.fixed != nil {
		cfg = *g.fixed
	} else {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			cfg = config.DefaultInvadersConfig()
		}
	}
	g.cfg = cfg

	highScore := 0
	if g.stats != nil {
		highScore = g.stats.HighScore
	}

	g.settings = NewSettings(cfg)
	g.stats = NewGameStats(cfg.Ship.Limit)
	g.stats.HighScore = highScore
	g.ship = NewShip(g.settings)
	g.fleet = NewFleet(g.settings)
	g.fleet.Create()
	g.bullets = make([]Bullet, 0, core.Max(cfg.Bullet.Allowed, 0))
	g.button = NewButton(g.settings)
	g.view = NewViewport(runtime.ScreenW, runtime.ScreenH, g.settings.ScreenW, g.settings.ScreenH)

	g.tick = 0
	g.pauseTicks = 0
	g.beaten = false
	g.events = nil
}

// Step processes this tick's events in order, then advances the simulation
// if a session is running and the hit pause is over.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, ev := range in.Events {
		g.handleEvent(ev)
	}

	if g.stats.Active {
		if g.pauseTicks > 0 {
			g.pauseTicks--
		} else {
			g.update()
		}
	}
	g.tick++

	events := g.events
	g.events = nil
	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) handleEvent(ev core.InputEvent) {
	switch ev.Kind {
	case core.EventPointerPress:
		x, y := g.view.Logical(ev.X, ev.Y)
		if g.button.Clicked(x, y) && !g.stats.Active {
			g.start()
		}
	case core.EventKeyDown:
		switch ev.Action {
		case core.ActionRight:
			g.ship.MovingRight = true
		case core.ActionLeft:
			g.ship.MovingLeft = true
		case core.ActionFire:
			g.fireBullet()
		case core.ActionStart:
			if !g.stats.Active {
				g.start()
			}
		}
	case core.EventKeyUp:
		switch ev.Action {
		case core.ActionRight:
			g.ship.MovingRight = false
		case core.ActionLeft:
			g.ship.MovingLeft = false
		}
	}
}

// start begins a new session.
func (g *Game) start() {
	g.settings.InitializeDynamicSettings()
	g.fleet.ResetDirection()
	g.stats.ResetStats()
	g.stats.Active = true
	g.beaten = false
	g.pauseTicks = 0

	g.fleet.Clear()
	g.bullets = g.bullets[:0]
	g.fleet.Create()
	g.ship.Center()

	g.emit(core.GameEventStarted, g.stats.ShipsLeft)
}

// fireBullet adds a bullet unless the limit is reached.
func (g *Game) fireBullet() {
	if len(g.bullets) < g.settings.BulletsAllowed {
		g.bullets = append(g.bullets, NewBullet(g.ship, g.settings))
	}
}

// update runs one tick of an active session.
func (g *Game) update() {
	g.ship.Update(g.settings.ShipSpeed)
	g.bullets = updateBullets(g.bullets, g.settings.BulletSpeed)
	g.checkBulletAlienCollisions()
	g.updateAliens()
}

func (g *Game) checkBulletAlienCollisions() {
	var killed int
	g.bullets, g.fleet.Aliens, killed = resolveBulletHits(g.bullets, g.fleet.Aliens)
	if killed > 0 {
		g.stats.Score += g.settings.AlienPoints * killed
		if g.stats.CheckHighScore() && !g.beaten {
			g.beaten = true
			g.emit(core.GameEventHighScore, g.stats.Score)
		}
	}

	if g.fleet.Empty() {
		g.bullets = g.bullets[:0]
		g.fleet.Create()
		g.settings.IncreaseSpeed()
		g.stats.Level++
		g.emit(core.GameEventFleetCleared, g.stats.Level)
	}
}

func (g *Game) updateAliens() {
	g.fleet.Update()

	if g.fleet.Collides(g.ship.Rect) {
		g.shipHit()
	}
	if g.fleet.ReachedBottom() {
		g.shipHit()
	}
}

// shipHit costs a ship and resets the field, or ends the session when none
// are left. The final hit leaves the fleet and bullets where they are.
func (g *Game) shipHit() {
	if !g.stats.Active {
		return
	}

	if g.stats.ShipsLeft > 0 {
		g.stats.ShipsLeft--

		g.fleet.Clear()
		g.bullets = g.bullets[:0]

		g.fleet.Create()
		g.ship.Center()

		g.pauseTicks = g.cfg.HitPauseTicks(g.runtime.TickRate)
		g.emit(core.GameEventShipHit, g.stats.ShipsLeft)
		return
	}

	g.stats.Active = false
	g.emit(core.GameEventGameOver, g.stats.Score)
}

func (g *Game) emit(t core.GameEventType, value int) {
	g.events = append(g.events, core.GameEvent{Type: t, Value: value})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.stats.Score,
		HighScore: g.stats.HighScore,
		Level:     g.stats.Level,
		Lives:     g.stats.ShipsLeft,
		GameOver:  !g.stats.Active,
	}
}

// Active reports whether a session is running.
func (g *Game) Active() bool {
	return g.stats.Active
}

// Paused reports whether the post-hit freeze is in effect.
func (g *Game) Paused() bool {
	return g.pauseTicks > 0
}

// PointerVisible reports whether the pointer should be shown: only while no session runs.
func (g *Game) PointerVisible() bool {
	return !g.stats.Active
}

// Resize updates the viewport used to map pointer presses.
func (g *Game) Resize(cols, rows int) {
	g.view = NewViewport(cols, rows, g.settings.ScreenW, g.settings.ScreenH)
}

// SeedHighScore raises the high score, e.g. from the persistent score log.
func (g *Game) SeedHighScore(score int) {
	g.stats.SeedHighScore(score)
}

// Config returns the configuration in effect.
func (g *Game) Config() config.InvadersConfig {
	return g.cfg
}
