package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Button is the start control shown while no session is running.
type Button struct {
	Rect  core.RectF
	Label string
}

// NewButton creates a button centred on the playfield.
func NewButton(s *Settings) Button {
	cfg := s.Config().Button
	w, h := float64(cfg.Width), float64(cfg.Height)
	return Button{
		Rect:  core.NewRectF((s.ScreenW-w)/2, (s.ScreenH-h)/2, w, h),
		Label: cfg.Label,
	}
}

// Clicked reports whether the logical point (x, y) is on the button.
func (b Button) Clicked(x, y float64) bool {
	return b.Rect.Contains(x, y)
}
