package invasion

import "math"

// Snapshot is the complete simulation state, flattened to primitives.
type Snapshot struct {
	Tick        uint64
	Phase       int
	FreezeTicks int

	ShipsLeft int
	Score     int
	Level     int
	HighScore int

	Direction   int
	ShipSpeed   float64
	BulletSpeed float64
	AlienSpeed  float64
	AlienPoints int

	ShipX, ShipY float64

	// Each alien is 2 values: X, Y
	AlienCount int
	AlienData  []float64

	// Each bullet is 2 values: X, Y
	BulletCount int
	BulletData  []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	aliens := g.fleet.Aliens()
	alienData := make([]float64, 0, len(aliens)*2)
	for _, a := range aliens {
		alienData = append(alienData, a.X, float64(a.Y))
	}

	bullets := g.bullets.Items()
	bulletData := make([]float64, 0, len(bullets)*2)
	for _, b := range bullets {
		bulletData = append(bulletData, float64(b.X), b.Y)
	}

	return Snapshot{
		Tick:        g.tickCount,
		Phase:       int(g.stats.Phase),
		FreezeTicks: g.freezeTicks,

		ShipsLeft: g.stats.ShipsLeft,
		Score:     g.stats.Score,
		Level:     g.stats.Level,
		HighScore: g.stats.HighScore,

		Direction:   int(g.settings.FleetDirection),
		ShipSpeed:   g.settings.ShipSpeed,
		BulletSpeed: g.settings.BulletSpeed,
		AlienSpeed:  g.settings.AlienSpeed,
		AlienPoints: g.settings.AlienPoints,

		ShipX: g.ship.X,
		ShipY: g.ship.Y,

		AlienCount:  len(aliens),
		AlienData:   alienData,
		BulletCount: len(bullets),
		BulletData:  bulletData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FreezeTicks) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShipsLeft)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Direction)   //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.ShipSpeed)
	h = h*31 + math.Float64bits(snap.BulletSpeed)
	h = h*31 + math.Float64bits(snap.AlienSpeed)
	h = h*31 + uint64(snap.AlienPoints) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.ShipX)
	h = h*31 + math.Float64bits(snap.ShipY)
	h = h*31 + uint64(snap.AlienCount)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BulletCount) //#nosec G115 -- hash computation

	for _, v := range snap.AlienData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.BulletData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}
