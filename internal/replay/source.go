package replay

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/loop"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// Source feeds a recording to a loop.Runner.
type Source struct {
	rec        Recording
	game       registry.Game
	cols, rows int
}

var _ loop.EventSource = (*Source)(nil)

// NewSource creates a source for rec. Recorded resizes are forwarded to game.
func NewSource(rec Recording, game registry.Game) *Source {
	return &Source{rec: rec, game: game, cols: rec.Cols, rows: rec.Rows}
}

// Next returns the recorded input of tick.
func (s *Source) Next(tick uint64) (core.InputFrame, error) {
	if tick >= uint64(len(s.rec.Ticks)) {
		return core.InputFrame{}, loop.ErrSourceDone
	}

	t := s.rec.Ticks[tick]
	if t.Cols > 0 && t.Rows > 0 {
		s.cols, s.rows = t.Cols, t.Rows
		if s.game != nil {
			registry.Resize(s.game, t.Cols, t.Rows)
		}
	}

	in := core.NewInputFrame()
	for _, ev := range t.Events {
		in.Apply(ev)
	}
	return in, nil
}

// Size returns the terminal size in effect at the last tick returned by Next.
// Playback should render at this size so pointer presses map the same way.
func (s *Source) Size() (cols, rows int) {
	return s.cols, s.rows
}
