package invaders

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Fleet owns the aliens and the shared fleet direction.
type Fleet struct {
	Aliens []Alien

	settings  *Settings
	direction int
}

// NewFleet creates an empty fleet moving right.
func NewFleet(s *Settings) *Fleet {
	return &Fleet{settings: s, direction: 1}
}

// Layout returns how many columns and rows of aliens fit on the screen.
// Either value may be zero (or negative) for a degenerate screen-to-sprite ratio.
func (f *Fleet) Layout() (cols, rows int) {
	s := f.settings
	cols = int(math.Floor((s.ScreenW - 2*s.AlienW) / (2 * s.AlienW)))
	rows = int(math.Floor((s.ScreenH - 2*s.AlienH - s.ShipH) / (2 * s.AlienH)))
	return cols, rows
}

// Create replaces the fleet with a full formation.
// A layout with no room yields an empty fleet.
func (f *Fleet) Create() {
	f.Aliens = f.Aliens[:0]
	cols, rows := f.Layout()
	if cols <= 0 || rows <= 0 {
		return
	}

	s := f.settings
	for row := range rows {
		for col := range cols {
			x := s.AlienW + 2*s.AlienW*float64(col)
			y := s.AlienH + 2*s.AlienH*float64(row)
			f.Aliens = append(f.Aliens, Alien{Rect: core.NewRectF(x, y, s.AlienW, s.AlienH)})
		}
	}
}

// Direction returns the shared horizontal direction, +1 or -1.
func (f *Fleet) Direction() int {
	return f.direction
}

// ResetDirection points the fleet to the right again.
func (f *Fleet) ResetDirection() {
	f.direction = 1
}

// CheckEdges changes direction if any alien is at an edge.
// The check stops at the first alien found, so it flips at most once.
func (f *Fleet) CheckEdges() bool {
	for _, a := range f.Aliens {
		if a.AtEdge(f.settings.ScreenW) {
			f.ChangeDirection()
			return true
		}
	}
	return false
}

// ChangeDirection drops the whole fleet and reverses its direction.
func (f *Fleet) ChangeDirection() {
	for i := range f.Aliens {
		f.Aliens[i].Rect.Y += f.settings.FleetDropSpeed
	}
	f.direction = -f.direction
}

// Update checks edges, then advances every alien. Reports whether the direction flipped.
func (f *Fleet) Update() bool {
	flipped := f.CheckEdges()
	for i := range f.Aliens {
		f.Aliens[i].Update(f.settings.AlienSpeed, f.direction)
	}
	return flipped
}

// Len returns the number of live aliens.
func (f *Fleet) Len() int {
	return len(f.Aliens)
}

// Empty reports whether every alien has been destroyed.
func (f *Fleet) Empty() bool {
	return len(f.Aliens) == 0
}

// Clear removes all aliens.
func (f *Fleet) Clear() {
	f.Aliens = f.Aliens[:0]
}

// Collides reports whether any alien overlaps r.
func (f *Fleet) Collides(r core.RectF) bool {
	for _, a := range f.Aliens {
		if a.Rect.Intersects(r) {
			return true
		}
	}
	return false
}

// ReachedBottom reports whether any alien's bottom edge reached the screen bottom.
func (f *Fleet) ReachedBottom() bool {
	for _, a := range f.Aliens {
		if a.Rect.Bottom() >= f.settings.ScreenH {
			return true
		}
	}
	return false
}
