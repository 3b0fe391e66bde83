// Package invasion implements the Alien Invasion simulation: a player ship
// shooting at a fleet that sweeps side to side and drops at every edge.
package invasion

import (
	"math"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Direction is the shared horizontal heading of the whole fleet.
type Direction int

const (
	DirRight Direction = 1
	DirLeft  Direction = -1
)

// Reverse returns the opposite heading.
func (d Direction) Reverse() Direction {
	if d == DirLeft {
		return DirRight
	}
	return DirLeft
}

func (d Direction) String() string {
	if d == DirLeft {
		return "left"
	}
	return "right"
}

// Size is the width and height of a sprite in viewport units.
type Size struct {
	W, H int
}

// Area bounds the top-left corner of a moving sprite.
type Area struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Settings holds the static tunables and the per-game dynamic values.
type Settings struct {
	ScreenW int
	ScreenH int

	Ship   Size
	Bullet Size
	Alien  Size

	BulletsAllowed int
	FleetDropSpeed int
	ShipLimit      int
	SpeedupScale   float64
	ScoreScale     float64
	VerticalRange  float64

	// Dynamic values, reset on new game and scaled on level-up
	ShipSpeed      float64
	BulletSpeed    float64
	AlienSpeed     float64
	AlienPoints    int
	FleetDirection Direction

	base config.InvasionConfig
}

// NewSettings builds settings for a viewport of w by h units.
func NewSettings(cfg config.InvasionConfig, w, h int) *Settings {
	s := &Settings{
		ScreenW:        w,
		ScreenH:        h,
		Ship:           Size{cfg.Ship.Width, cfg.Ship.Height},
		Bullet:         Size{cfg.Bullet.Width, cfg.Bullet.Height},
		Alien:          Size{cfg.Alien.Width, cfg.Alien.Height},
		BulletsAllowed: max(cfg.Bullet.Allowed, 1),
		FleetDropSpeed: cfg.Fleet.DropSpeed,
		ShipLimit:      cfg.Gameplay.ShipLimit,
		SpeedupScale:   cfg.Scaling.SpeedupScale,
		ScoreScale:     cfg.Scaling.ScoreScale,
		VerticalRange:  cfg.Ship.VerticalRange,
		base:           cfg,
	}
	s.InitializeDynamic()
	return s
}

// InitializeDynamic restores the values that change during a game.
func (s *Settings) InitializeDynamic() {
	s.ShipSpeed = s.base.Ship.Speed
	s.BulletSpeed = s.base.Bullet.Speed
	s.AlienSpeed = s.base.Alien.Speed
	s.AlienPoints = s.base.Alien.Points
	s.FleetDirection = DirRight
}

// Upper bounds for the per-level escalation.
const (
	MaxAlienPoints = math.MaxInt32
	MaxSpeed       = 1 << 20
)

// IncreaseSpeed escalates speeds and the alien point value for the next level.
// Values saturate at MaxSpeed and MaxAlienPoints.
func (s *Settings) IncreaseSpeed() {
	s.ShipSpeed = min(s.ShipSpeed*s.SpeedupScale, MaxSpeed)
	s.BulletSpeed = min(s.BulletSpeed*s.SpeedupScale, MaxSpeed)
	s.AlienSpeed = min(s.AlienSpeed*s.SpeedupScale, MaxSpeed)
	s.AlienPoints = int(min(float64(s.AlienPoints)*s.ScoreScale, MaxAlienPoints))
}

// ShipArea returns where the ship's top-left corner may go: the full width and
// the lower VerticalRange fraction of the viewport.
func (s *Settings) ShipArea() Area {
	maxX := float64(max(s.ScreenW-s.Ship.W, 0))
	maxY := float64(max(s.ScreenH-s.Ship.H, 0))
	top := float64(s.ScreenH - int(float64(s.ScreenH)*s.VerticalRange))
	return Area{
		MinX: 0,
		MaxX: maxX,
		MinY: core.ClampF(top, 0, maxY),
		MaxY: maxY,
	}
}

// Viewport returns the screen as a rect at the origin.
func (s *Settings) Viewport() core.Rect {
	return core.NewRect(0, 0, s.ScreenW, s.ScreenH)
}
