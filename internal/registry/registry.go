// Package registry keeps the table of playable games.
// Games register a factory from init(), so the platform and CLI can
// instantiate them by id without importing the game packages directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Game is the contract between a simulation and the platform.
// Implementations hold pure logic: the platform owns timing, input mapping and output.
type Game interface {
	// ID returns a stable identifier used by the CLI and the score log.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset prepares a fresh process-level game (stats, fleet, ship).
	// The high score is kept only by HighScoreSeeder implementations.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by exactly one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst. dst is cleared by the caller.
	Render(dst *core.Screen)

	// State returns the externally visible stats.
	State() core.GameState
}

// HighScoreSeeder is implemented by games whose high score can be restored
// from a persistent log before the first session.
type HighScoreSeeder interface {
	SeedHighScore(score int)
}

// PointerReporter is implemented by games that want the platform to show
// and report the pointer only in some states.
type PointerReporter interface {
	PointerVisible() bool
}

// Resizer is implemented by games that map pointer positions through the
// current terminal size.
type Resizer interface {
	Resize(cols, rows int)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory. Panics on a duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game by id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// SeedHighScore forwards score to g if it supports seeding.
// Reports whether the game accepted it.
func SeedHighScore(g Game, score int) bool {
	s, ok := g.(HighScoreSeeder)
	if ok {
		s.SeedHighScore(score)
	}
	return ok
}

// PointerVisible reports whether the platform should show the pointer for g.
// Games without an opinion keep the pointer hidden.
func PointerVisible(g Game) bool {
	if p, ok := g.(PointerReporter); ok {
		return p.PointerVisible()
	}
	return false
}

// Resize tells g the terminal size if it cares.
func Resize(g Game, cols, rows int) {
	if r, ok := g.(Resizer); ok {
		r.Resize(cols, rows)
	}
}
