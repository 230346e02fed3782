package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Ship is the player's ship. It is created once and re-centred on respawn.
type Ship struct {
	Rect        core.RectF
	MovingLeft  bool
	MovingRight bool

	screenW, screenH float64
}

// NewShip creates a ship at the bottom centre of the playfield.
func NewShip(s *Settings) *Ship {
	sh := &Ship{
		Rect:    core.NewRectF(0, 0, s.ShipW, s.ShipH),
		screenW: s.ScreenW,
		screenH: s.ScreenH,
	}
	sh.Center()
	return sh
}

// Update moves the ship according to its movement flags.
// Movement only applies while the ship is inside the playfield.
func (sh *Ship) Update(speed float64) {
	if sh.MovingRight && sh.Rect.Right() < sh.screenW {
		sh.Rect.X += speed
	}
	if sh.MovingLeft && sh.Rect.X > 0 {
		sh.Rect.X -= speed
	}
}

// Center places the ship's bottom edge on the screen bottom, horizontally centred.
func (sh *Ship) Center() {
	sh.Rect.X = (sh.screenW - sh.Rect.W) / 2
	sh.Rect.Y = sh.screenH - sh.Rect.H
}

// Stop clears both movement flags.
func (sh *Ship) Stop() {
	sh.MovingLeft = false
	sh.MovingRight = false
}
