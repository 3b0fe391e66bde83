package invasion

import "github.com/vovakirdan/alien-invasion/internal/core"

// Ship is the player's craft. Position is kept in floats so speeds below one
// unit per tick still accumulate.
type Ship struct {
	X, Y float64
	W, H int

	MovingLeft  bool
	MovingRight bool
	MovingUp    bool
	MovingDown  bool
}

// NewShip creates a ship of the given size at the origin.
func NewShip(size Size) *Ship {
	return &Ship{W: size.W, H: size.H}
}

// Rect returns the ship's integer bounds.
func (s *Ship) Rect() core.Rect {
	return core.RectAt(s.X, s.Y, s.W, s.H)
}

// Center places the ship at the middle of the viewport's bottom edge.
func (s *Ship) Center(screenW, screenH int) {
	s.X = float64(screenW-s.W) / 2
	s.Y = float64(screenH - s.H)
}

// Stop clears all movement intents.
func (s *Ship) Stop() {
	s.MovingLeft, s.MovingRight, s.MovingUp, s.MovingDown = false, false, false, false
}

// Update moves the ship one tick along its intents, clamped to area.
func (s *Ship) Update(speed float64, area Area) {
	if s.MovingRight {
		s.X += speed
	}
	if s.MovingLeft {
		s.X -= speed
	}
	if s.MovingUp {
		s.Y -= speed
	}
	if s.MovingDown {
		s.Y += speed
	}
	s.X = core.ClampF(s.X, area.MinX, area.MaxX)
	s.Y = core.ClampF(s.Y, area.MinY, area.MaxY)
}

// Bullet is a projectile travelling straight up.
type Bullet struct {
	X    int
	Y    float64
	W, H int
}

// NewBullet creates a bullet aligned to the ship's mid-top.
func NewBullet(ship *Ship, size Size) *Bullet {
	r := ship.Rect()
	return &Bullet{
		X: r.CenterX() - size.W/2,
		Y: float64(r.Y),
		W: size.W,
		H: size.H,
	}
}

// Rect returns the bullet's integer bounds.
func (b *Bullet) Rect() core.Rect {
	return core.RectAt(float64(b.X), b.Y, b.W, b.H)
}

// Update moves the bullet up by speed.
func (b *Bullet) Update(speed float64) {
	b.Y -= speed
}

// Gone reports whether the bullet has left the top of the viewport.
func (b *Bullet) Gone() bool {
	return b.Rect().Bottom() <= 0
}

// Alien is one fleet member. It has no heading of its own; the fleet
// direction lives in Settings.
type Alien struct {
	X    float64
	Y    int
	W, H int
}

// Rect returns the alien's integer bounds.
func (a *Alien) Rect() core.Rect {
	return core.RectAt(a.X, float64(a.Y), a.W, a.H)
}

// Update moves the alien horizontally.
func (a *Alien) Update(speed float64, dir Direction) {
	a.X += speed * float64(dir)
}

// AtLeadingEdge reports whether the alien touches or crosses the side of a
// viewport viewW units wide that it is heading towards.
func (a *Alien) AtLeadingEdge(viewW int, dir Direction) bool {
	r := a.Rect()
	if dir == DirLeft {
		return r.X <= 0
	}
	return r.X >= viewW-a.W
}
