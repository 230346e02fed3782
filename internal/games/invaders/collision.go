package invaders

// resolveBulletHits removes every bullet that overlaps at least one alien and
// every alien that overlaps at least one bullet. Survivors keep their order.
// Returns the filtered slices and the number of aliens destroyed; an alien hit
// by several bullets counts once.
func resolveBulletHits(bullets []Bullet, aliens []Alien) ([]Bullet, []Alien, int) {
	if len(bullets) == 0 || len(aliens) == 0 {
		return bullets, aliens, 0
	}

	deadBullet := make([]bool, len(bullets))
	deadAlien := make([]bool, len(aliens))
	for i := range bullets {
		for j := range aliens {
			if bullets[i].Rect.Intersects(aliens[j].Rect) {
				deadBullet[i] = true
				deadAlien[j] = true
			}
		}
	}

	keptBullets := bullets[:0]
	for i, b := range bullets {
		if !deadBullet[i] {
			keptBullets = append(keptBullets, b)
		}
	}

	killed := 0
	keptAliens := aliens[:0]
	for j, a := range aliens {
		if deadAlien[j] {
			killed++
			continue
		}
		keptAliens = append(keptAliens, a)
	}

	return keptBullets, keptAliens, killed
}
