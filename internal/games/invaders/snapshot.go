package invaders

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Snapshot is a flat copy of the simulation state, used to compare runs.
type Snapshot struct {
	Tick       uint64
	Active     bool
	PauseTicks int
	ShipsLeft  int
	Score      int
	HighScore  int
	Level      int
	Direction  int

	ShipX, ShipY float64
	MovingLeft   bool
	MovingRight  bool

	ShipSpeed   float64
	BulletSpeed float64
	AlienSpeed  float64
	AlienPoints int

	// X, Y pairs
	Aliens  []float64
	Bullets []float64
}

// Snapshot returns the current state.
func (g *Game) Snapshot() Snapshot {
	aliens := make([]float64, 0, 2*g.fleet.Len())
	for _, a := range g.fleet.Aliens {
		aliens = append(aliens, a.Rect.X, a.Rect.Y)
	}
	bullets := make([]float64, 0, 2*len(g.bullets))
	for _, b := range g.bullets {
		bullets = append(bullets, b.Rect.X, b.Rect.Y)
	}

	return Snapshot{
		Tick:        g.tick,
		Active:      g.stats.Active,
		PauseTicks:  g.pauseTicks,
		ShipsLeft:   g.stats.ShipsLeft,
		Score:       g.stats.Score,
		HighScore:   g.stats.HighScore,
		Level:       g.stats.Level,
		Direction:   g.fleet.Direction(),
		ShipX:       g.ship.Rect.X,
		ShipY:       g.ship.Rect.Y,
		MovingLeft:  g.ship.MovingLeft,
		MovingRight: g.ship.MovingRight,
		ShipSpeed:   g.settings.ShipSpeed,
		BulletSpeed: g.settings.BulletSpeed,
		AlienSpeed:  g.settings.AlienSpeed,
		AlienPoints: g.settings.AlienPoints,
		Aliens:      aliens,
		Bullets:     bullets,
	}
}

// Hash returns an FNV-1a hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	putInt := func(v int64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v)) //#nosec G115 -- hash input
		h.Write(buf[:])
	}
	putFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	putBool := func(v bool) {
		if v {
			putInt(1)
		} else {
			putInt(0)
		}
	}

	putInt(int64(snap.Tick)) //#nosec G115 -- hash input
	putBool(snap.Active)
	putInt(int64(snap.PauseTicks))
	putInt(int64(snap.ShipsLeft))
	putInt(int64(snap.Score))
	putInt(int64(snap.HighScore))
	putInt(int64(snap.Level))
	putInt(int64(snap.Direction))
	putFloat(snap.ShipX)
	putFloat(snap.ShipY)
	putBool(snap.MovingLeft)
	putBool(snap.MovingRight)
	putFloat(snap.ShipSpeed)
	putFloat(snap.BulletSpeed)
	putFloat(snap.AlienSpeed)
	putInt(int64(snap.AlienPoints))

	putInt(int64(len(snap.Aliens)))
	for _, v := range snap.Aliens {
		putFloat(v)
	}
	putInt(int64(len(snap.Bullets)))
	for _, v := range snap.Bullets {
		putFloat(v)
	}
	return h.Sum64()
}
