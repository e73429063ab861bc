// Package config provides tunable gameplay settings loaded from a data
// file, so tuning passes do not require a rebuild.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds all tunable gameplay settings.
type Config struct {
	Window WindowConfig `json:"window"`
	Player PlayerConfig `json:"player"`
}

// WindowConfig defines the game window.
type WindowConfig struct {
	Width  int `json:"width"`  // Window width in pixels
	Height int `json:"height"` // Window height in pixels
}

// PlayerConfig defines movement and interaction tuning.
type PlayerConfig struct {
	Speed         float32 `json:"speed"`          // Movement speed in tiles per tick
	InteractRange float32 `json:"interact_range"` // Reach for door interaction, in tiles
}

// Default returns the built-in settings used when no config file exists.
func Default() *Config {
	return &Config{
		Window: WindowConfig{Width: 1024, Height: 768},
		Player: PlayerConfig{Speed: 0.08, InteractRange: 1.5},
	}
}

// Load reads settings from a JSON file. Fields left out of the file keep
// their defaults; a missing file returns the defaults outright.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size: %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Player.Speed <= 0 {
		return fmt.Errorf("invalid player speed: %f", c.Player.Speed)
	}
	if c.Player.InteractRange <= 0 {
		return fmt.Errorf("invalid interact range: %f", c.Player.InteractRange)
	}
	return nil
}
