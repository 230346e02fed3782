package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Alien is a single fleet member.
type Alien struct {
	Rect core.RectF
}

// AtEdge reports whether the alien touches or crosses a horizontal screen edge.
func (a Alien) AtEdge(screenW float64) bool {
	return a.Rect.Right() >= screenW || a.Rect.X <= 0
}

// Update moves the alien horizontally. direction is +1 (right) or -1 (left).
func (a *Alien) Update(speed float64, direction int) {
	a.Rect.X += speed * float64(direction)
}
