package replay

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Recorder collects ticks as they are played.
type Recorder struct {
	rec        Recording
	cols, rows int // Pending resize for the next tick
}

// NewRecorder starts a recording for a game created with cfg and runtime.
func NewRecorder(gameID, difficulty string, cfg config.InvadersConfig, runtime core.RuntimeConfig) *Recorder {
	return &Recorder{
		rec: Recording{
			Version:    Version,
			GameID:     gameID,
			Difficulty: difficulty,
			TickRate:   runtime.TickRate,
			Cols:       runtime.ScreenW,
			Rows:       runtime.ScreenH,
			Config:     cfg,
			CreatedAt:  time.Now().UTC(),
		},
	}
}

// Resize notes a terminal resize; it is attached to the next recorded tick.
func (r *Recorder) Resize(cols, rows int) {
	r.cols, r.rows = cols, rows
}

// Record appends one tick's input.
func (r *Recorder) Record(in core.InputFrame) {
	t := Tick{Cols: r.cols, Rows: r.rows}
	if len(in.Events) > 0 {
		t.Events = append([]core.InputEvent(nil), in.Events...)
	}
	r.rec.Ticks = append(r.rec.Ticks, t)
	r.cols, r.rows = 0, 0
}

// Len returns the number of recorded ticks.
func (r *Recorder) Len() int {
	return len(r.rec.Ticks)
}

// Recording returns the recording so far.
func (r *Recorder) Recording() Recording {
	return r.rec
}

// Save writes the recording so far to path.
func (r *Recorder) Save(path string) error {
	return Save(path, r.rec)
}
