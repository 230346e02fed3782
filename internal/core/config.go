package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and tick rate.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score seen by this game instance
	Level     int  // Current level
	Lives     int  // Ships left
	GameOver  bool // Whether no session is in progress
}

// GameEventType identifies something notable that happened during a tick.
type GameEventType int

const (
	GameEventStarted GameEventType = iota + 1
	GameEventShipHit
	GameEventFleetCleared
	GameEventHighScore
	GameEventGameOver
)

// String returns the event name used in logs.
func (t GameEventType) String() string {
	switch t {
	case GameEventStarted:
		return "started"
	case GameEventShipHit:
		return "ship_hit"
	case GameEventFleetCleared:
		return "fleet_cleared"
	case GameEventHighScore:
		return "high_score"
	case GameEventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameEvent is emitted by a game during Step.
// Value carries the event's headline number (lives left, new level, score).
type GameEvent struct {
	Type  GameEventType
	Value int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []GameEvent
}
