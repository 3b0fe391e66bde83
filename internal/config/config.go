// Package config provides YAML-based configuration loading and difficulty
// presets for Alien Invasion.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Profile selects the unit system of a configuration: terminal cells or window pixels.
type Profile string

const (
	ProfileTerminal Profile = "terminal"
	ProfileWindow   Profile = "window"
)

// InvasionConfig contains every tunable of the game.
// Speeds are in viewport units per tick.
type InvasionConfig struct {
	Ship     ShipConfig     `yaml:"ship"`
	Bullet   BulletConfig   `yaml:"bullet"`
	Alien    AlienConfig    `yaml:"alien"`
	Fleet    FleetConfig    `yaml:"fleet"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Scaling  ScalingConfig  `yaml:"scaling"`
	Input    InputConfig    `yaml:"input"`
}

// ShipConfig defines the player's craft.
type ShipConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	// VerticalRange is the fraction of the viewport height, measured from
	// the bottom, the ship may move within.
	VerticalRange float64 `yaml:"vertical_range"`
}

// BulletConfig defines projectiles.
type BulletConfig struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Speed   float64 `yaml:"speed"`
	Allowed int     `yaml:"allowed"` // Max live bullets
}

// AlienConfig defines a single fleet member.
type AlienConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Points int     `yaml:"points"`
}

// FleetConfig defines formation movement.
type FleetConfig struct {
	DropSpeed int `yaml:"drop_speed"`
}

// GameplayConfig defines lives and session pacing.
type GameplayConfig struct {
	ShipLimit    int `yaml:"ship_limit"`
	HitPauseMS   int `yaml:"hit_pause_ms"`
	ButtonWidth  int `yaml:"button_width"`
	ButtonHeight int `yaml:"button_height"`
}

// ScalingConfig defines the per-level escalation.
type ScalingConfig struct {
	SpeedupScale float64 `yaml:"speedup_scale"`
	ScoreScale   float64 `yaml:"score_scale"`
}

// InputConfig tunes host-side input handling.
type InputConfig struct {
	// KeyHoldMS is how long a terminal key counts as held after its last
	// repeat. Terminals report presses only, never releases.
	KeyHoldMS int `yaml:"key_hold_ms"`
}

// HitPause returns the freeze applied after a lost ship.
func (c InvasionConfig) HitPause() time.Duration {
	return time.Duration(c.Gameplay.HitPauseMS) * time.Millisecond
}

// KeyHold returns the terminal key hold window.
func (c InvasionConfig) KeyHold() time.Duration {
	return time.Duration(c.Input.KeyHoldMS) * time.Millisecond
}

// Validate reports every value that would make the simulation ill-formed.
func (c InvasionConfig) Validate() error {
	var errs []error

	if c.Ship.Width <= 0 || c.Ship.Height <= 0 {
		errs = append(errs, fmt.Errorf("ship size must be positive, got %dx%d", c.Ship.Width, c.Ship.Height))
	}
	if c.Alien.Width <= 0 || c.Alien.Height <= 0 {
		errs = append(errs, fmt.Errorf("alien size must be positive, got %dx%d", c.Alien.Width, c.Alien.Height))
	}
	if c.Bullet.Width <= 0 || c.Bullet.Height <= 0 {
		errs = append(errs, fmt.Errorf("bullet size must be positive, got %dx%d", c.Bullet.Width, c.Bullet.Height))
	}
	if c.Bullet.Allowed < 1 {
		errs = append(errs, fmt.Errorf("bullet.allowed must be at least 1, got %d", c.Bullet.Allowed))
	}
	if c.Gameplay.ShipLimit < 1 {
		errs = append(errs, fmt.Errorf("gameplay.ship_limit must be at least 1, got %d", c.Gameplay.ShipLimit))
	}
	if c.Ship.VerticalRange < 0 || c.Ship.VerticalRange > 1 {
		errs = append(errs, fmt.Errorf("ship.vertical_range must be within [0, 1], got %g", c.Ship.VerticalRange))
	}
	if c.Scaling.SpeedupScale <= 0 || c.Scaling.ScoreScale <= 0 {
		errs = append(errs, errors.New("scaling factors must be positive"))
	}
	if c.Fleet.DropSpeed < 0 || c.Gameplay.HitPauseMS < 0 {
		errs = append(errs, errors.New("fleet.drop_speed and gameplay.hit_pause_ms must not be negative"))
	}

	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. An empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset adjusts cfg for a difficulty preset.
// Fixed keeps the first level's speeds for the whole game.
func ApplyPreset(cfg *InvasionConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.ShipLimit = 5
		cfg.Scaling.SpeedupScale = 1.05
	case DifficultyHard:
		cfg.Gameplay.ShipLimit = 2
		cfg.Scaling.SpeedupScale = 1.2
		cfg.Alien.Speed *= 1.5
	case DifficultyFixed:
		cfg.Scaling.SpeedupScale = 1.0
		cfg.Scaling.ScoreScale = 1.0
	}
}
