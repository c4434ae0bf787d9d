// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Season SeasonFileConfig `toml:"season"`
}

// SeasonFileConfig maps season-related settings. Fields are pointers so
// unset keys do not override CLI flags.
type SeasonFileConfig struct {
	Start       *string `toml:"start"`
	Puzzle      *int    `toml:"puzzle"`
	Weeks       *int    `toml:"weeks"`
	DayFirst    *bool   `toml:"day-first"`
	DoubleDates *string `toml:"double-dates"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
