package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Bullet is a projectile travelling straight up.
type Bullet struct {
	Rect core.RectF
}

// NewBullet creates a bullet whose top edge is centred on the ship's top edge.
func NewBullet(ship *Ship, s *Settings) Bullet {
	return Bullet{
		Rect: core.NewRectF(ship.Rect.CenterX()-s.BulletW/2, ship.Rect.Y, s.BulletW, s.BulletH),
	}
}

// Update moves the bullet up by speed.
func (b *Bullet) Update(speed float64) {
	b.Rect.Y -= speed
}

// Gone reports whether the bullet has fully left the top of the screen.
func (b Bullet) Gone() bool {
	return b.Rect.Bottom() <= 0
}

// updateBullets advances every bullet and drops those above the screen.
// Survivors keep their order.
func updateBullets(bullets []Bullet, speed float64) []Bullet {
	kept := bullets[:0]
	for i := range bullets {
		bullets[i].Update(speed)
		if !bullets[i].Gone() {
			kept = append(kept, bullets[i])
		}
	}
	return kept
}
