package config

import (
	_ "embed"
)

//go:embed defaults/terminal.yaml
var defaultTerminalYAML []byte

//go:embed defaults/window.yaml
var defaultWindowYAML []byte

// DefaultTerminalConfig returns the built-in configuration in terminal cells.
func DefaultTerminalConfig() InvasionConfig {
	return InvasionConfig{
		Ship: ShipConfig{
			Width:         3,
			Height:        1,
			Speed:         0.5,
			VerticalRange: 0.375,
		},
		Bullet: BulletConfig{
			Width:   1,
			Height:  1,
			Speed:   0.6,
			Allowed: 3,
		},
		Alien: AlienConfig{
			Width:  3,
			Height: 1,
			Speed:  0.05,
			Points: 50,
		},
		Fleet: FleetConfig{
			DropSpeed: 1,
		},
		Gameplay: GameplayConfig{
			ShipLimit:    3,
			HitPauseMS:   500,
			ButtonWidth:  12,
			ButtonHeight: 3,
		},
		Scaling: ScalingConfig{
			SpeedupScale: 1.1,
			ScoreScale:   1.5,
		},
		Input: InputConfig{
			KeyHoldMS: 150,
		},
	}
}

// DefaultWindowConfig returns the built-in configuration in window pixels.
func DefaultWindowConfig() InvasionConfig {
	return InvasionConfig{
		Ship: ShipConfig{
			Width:         60,
			Height:        48,
			Speed:         6.0,
			VerticalRange: 0.375,
		},
		Bullet: BulletConfig{
			Width:   3,
			Height:  15,
			Speed:   8.0,
			Allowed: 3,
		},
		Alien: AlienConfig{
			Width:  40,
			Height: 40,
			Speed:  2.0,
			Points: 50,
		},
		Fleet: FleetConfig{
			DropSpeed: 10,
		},
		Gameplay: GameplayConfig{
			ShipLimit:    3,
			HitPauseMS:   500,
			ButtonWidth:  200,
			ButtonHeight: 50,
		},
		Scaling: ScalingConfig{
			SpeedupScale: 1.1,
			ScoreScale:   1.5,
		},
	}
}

// Default returns the hardcoded configuration for a profile.
func Default(profile Profile) InvasionConfig {
	if profile == ProfileWindow {
		return DefaultWindowConfig()
	}
	return DefaultTerminalConfig()
}

// GetDefaultYAML returns the embedded default YAML for a profile.
func GetDefaultYAML(profile Profile) []byte {
	switch profile {
	case ProfileTerminal:
		return defaultTerminalYAML
	case ProfileWindow:
		return defaultWindowYAML
	default:
		return nil
	}
}
