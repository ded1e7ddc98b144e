// Package config holds pond configuration: TOML file, defaults, and an
// environment override for the database path.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds all pond configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Engine   EngineConfig   `toml:"engine"`
	Logging  LoggingConfig  `toml:"logging"`
}

type ServerConfig struct {
	Bind string `toml:"bind"`
	Port int    `toml:"port"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type EngineConfig struct {
	// EventChance is the probability that one draw spawns a random event.
	EventChance float64 `toml:"event_chance"`
	// SweepInterval is how often expired events are reclaimed, in seconds.
	SweepInterval int `toml:"sweep_interval"`
}

type LoggingConfig struct {
	Level string `toml:"level"` // "debug", "info", "warn", "error"
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Bind: "127.0.0.1",
			Port: 38888,
		},
		Database: DatabaseConfig{
			Path: "", // resolved at runtime via store.DefaultDBPath()
		},
		Engine: EngineConfig{
			EventChance:   0.05,
			SweepInterval: 300,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the TOML file at path over the defaults. A missing file is
// not an error, the defaults stand. POND_DB overrides the database path
// last.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if dbPath := os.Getenv("POND_DB"); dbPath != "" {
		cfg.Database.Path = dbPath
	}

	return cfg, nil
}

// ListenAddr returns the bind:port address string.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Bind, c.Server.Port)
}
