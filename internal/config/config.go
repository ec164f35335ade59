package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds user preferences applied before flags.
type Config struct {
	Quiet          bool `json:"quiet"`
	FollowIncludes bool `json:"follow_includes"`
	SwatchWidth    int  `json:"swatch_width"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Quiet:          false,
		FollowIncludes: true,
		SwatchWidth:    9,
	}
}

// Load reads config from ~/.config/vscolors/config.json.
// Returns defaults if the file doesn't exist or can't be read.
func Load() Config {
	cfg := Default()
	path, err := configPath()
	if err != nil {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	_ = json.Unmarshal(data, &cfg)
	return cfg
}

// Save writes config to ~/.config/vscolors/config.json.
func Save(cfg Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "vscolors", "config.json"), nil
}
