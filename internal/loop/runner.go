package loop

import (
	"context"
	"errors"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// ErrSourceDone is returned by an EventSource that has no more input.
var ErrSourceDone = errors.New("loop: event source exhausted")

// EventSource supplies the input of each tick, in arrival order.
type EventSource interface {
	Next(tick uint64) (core.InputFrame, error)
}

// Presenter shows a rendered frame.
type Presenter interface {
	Present(screen *core.Screen, state core.GameState) error
}

// Runner ties a game to an input source and an optional presenter.
// A nil Scheduler runs ticks back to back.
type Runner struct {
	Game      registry.Game
	Source    EventSource
	Presenter Presenter
	Scheduler *Scheduler
	Screen    *core.Screen

	// OnStep, if set, sees every step result.
	OnStep func(tick uint64, res core.StepResult)
}

// Run loops Input -> Update -> Draw until the source is exhausted, a quit
// event arrives, or ctx is cancelled. It returns the last game state.
func (r *Runner) Run(ctx context.Context) (core.GameState, error) {
	var tick uint64
	for {
		if err := ctx.Err(); err != nil {
			return r.Game.State(), err
		}

		// ===== INPUT =====
		in, err := r.Source.Next(tick)
		if errors.Is(err, ErrSourceDone) {
			return r.Game.State(), nil
		}
		if err != nil {
			return r.Game.State(), err
		}
		if in.Has(core.ActionQuit) {
			return r.Game.State(), nil
		}

		// ===== UPDATE =====
		res := r.Game.Step(in)
		if r.OnStep != nil {
			r.OnStep(tick, res)
		}
		tick++

		// ===== DRAW =====
		if r.Presenter != nil && r.Screen != nil {
			r.Screen.Clear()
			r.Game.Render(r.Screen)
			if err := r.Presenter.Present(r.Screen, res.State); err != nil {
				return res.State, err
			}
		}

		// ===== FRAME TIMING =====
		if r.Scheduler != nil {
			if err := r.Scheduler.Wait(ctx); err != nil {
				return res.State, err
			}
		}
	}
}
