package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration for a profile.
// Search order: customPath -> ~/.invasion/configs/<profile>.yaml ->
// ./configs/<profile>.yaml -> embedded default.
//
// Files are decoded over the profile defaults, so a file may set only the
// values it wants to change. An explicit customPath that cannot be read,
// parsed or validated is an error; broken files found by the search are skipped.
func Load(profile Profile, customPath string) (InvasionConfig, error) {
	if customPath != "" {
		return loadFile(profile, customPath)
	}

	filename := string(profile) + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, err := loadFile(profile, userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(profile, filepath.Join("configs", filename)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := parse(profile, GetDefaultYAML(profile))
	if err != nil {
		return Default(profile), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

// LoadWithPreset loads the configuration and applies a difficulty preset.
func LoadWithPreset(profile Profile, customPath string, preset DifficultyPreset) (InvasionConfig, error) {
	cfg, err := Load(profile, customPath)
	if err != nil {
		return cfg, err
	}
	ApplyPreset(&cfg, preset)
	return cfg, nil
}

func loadFile(profile Profile, path string) (InvasionConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(profile), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := parse(profile, data)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func parse(profile Profile, data []byte) (InvasionConfig, error) {
	cfg := Default(profile)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(profile), fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(profile), fmt.Errorf("invalid: %w", err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invasion", "configs", filename)
}
