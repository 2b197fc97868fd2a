// Package config loads session settings from YAML with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"war/game"
	"war/meta"

	"gopkg.in/yaml.v3"
)

// Config holds everything needed to start a session.
type Config struct {
	Territories int            `yaml:"territories"`
	Player      game.Faction   `yaml:"player"`
	Factions    []game.Faction `yaml:"factions"` // Dealt at setup; empty keeps every territory neutral
	Seed        uint64         `yaml:"seed"`     // 0 draws a fresh seed
	Mission     *int           `yaml:"mission,omitempty"`
	MaxTurns    int            `yaml:"max_turns"`
	Goroutines  int            `yaml:"goroutines"`
	Logging     LoggingConfig  `yaml:"logging"`
}

// LoggingConfig configures zerolog output.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	Console bool   `yaml:"console"`
}

// DefaultConfig returns the settings of a plain session: 42 neutral
// territories and RED as the player.
func DefaultConfig() *Config {
	return &Config{
		Territories: meta.MAX_TERRITORIES,
		Player:      meta.PLAYER_FACTION,
		MaxTurns:    meta.MAX_TURNS,
		Goroutines:  meta.GO_ROUTINES,
		Logging: LoggingConfig{
			Level:   "info",
			Console: true,
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("WAR_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid WAR_SEED %q: %w", v, err)
		}
		c.Seed = seed
	}
	if v := os.Getenv("WAR_TERRITORIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid WAR_TERRITORIES %q: %w", v, err)
		}
		c.Territories = n
	}
	if v := os.Getenv("WAR_PLAYER"); v != "" {
		c.Player = game.Faction(v)
	}
	if v := os.Getenv("WAR_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return nil
}

// Validate rejects settings no session could start with.
func (c *Config) Validate() error {
	if c.Territories <= 0 {
		return fmt.Errorf("territories must be positive, got %d", c.Territories)
	}
	if c.Player == "" {
		return fmt.Errorf("player faction must not be empty")
	}
	if c.MaxTurns <= 0 {
		return fmt.Errorf("max_turns must be positive, got %d", c.MaxTurns)
	}
	if c.Goroutines <= 0 {
		return fmt.Errorf("goroutines must be positive, got %d", c.Goroutines)
	}
	if c.Mission != nil {
		if _, err := game.MissionByID(*c.Mission); err != nil {
			return fmt.Errorf("invalid mission: %w", err)
		}
	}
	return nil
}
