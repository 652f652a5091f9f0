// Package config loads vuezee settings from an HCL file and the
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/vuezee/internal/highscores"
	"github.com/lox/vuezee/internal/storage"
)

// DefaultFile is the config file read when --config is not given.
const DefaultFile = "vuezee.hcl"

// Config is the resolved configuration.
type Config struct {
	Storage StorageConfig
	Log     LogConfig
	Game    GameConfig
}

// StorageConfig selects where scorecards and high scores are kept.
type StorageConfig struct {
	Driver string `hcl:"driver,optional" env:"VUEZEE_STORAGE_DRIVER"`
	// Path is a directory for the file driver and a database file for
	// sqlite.
	Path string `hcl:"path,optional" env:"VUEZEE_STORAGE_PATH"`
}

// LogConfig controls the logger the CLI builds.
type LogConfig struct {
	Level string `hcl:"level,optional" env:"VUEZEE_LOG_LEVEL"`
	File  string `hcl:"file,optional" env:"VUEZEE_LOG_FILE"`
}

// GameConfig holds gameplay settings.
type GameConfig struct {
	// Seed fixes the dice. Zero rolls randomly.
	Seed int64 `hcl:"seed,optional" env:"VUEZEE_SEED"`
	// HighScores is how many scores the high score list shows.
	HighScores int `hcl:"high_scores,optional" env:"VUEZEE_HIGH_SCORES"`
}

// fileConfig mirrors Config with optional blocks.
type fileConfig struct {
	Storage *StorageConfig `hcl:"storage,block"`
	Log     *LogConfig     `hcl:"log,block"`
	Game    *GameConfig    `hcl:"game,block"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Driver: storage.DriverFile,
			Path:   defaultDataDir(),
		},
		Log: LogConfig{
			Level: "info",
		},
		Game: GameConfig{
			HighScores: highscores.DefaultTop,
		},
	}
}

// Load reads filename, falling back to defaults when it does not exist, and
// then applies VUEZEE_* environment overrides.
func Load(filename string) (*Config, error) {
	cfg, err := LoadFile(filename)
	if err != nil {
		return nil, err
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads filename without consulting the environment.
func LoadFile(filename string) (*Config, error) {
	cfg := Default()
	if filename == "" {
		return cfg, nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return cfg, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if fc.Storage != nil {
		if fc.Storage.Driver != "" {
			cfg.Storage.Driver = fc.Storage.Driver
		}
		if fc.Storage.Path != "" {
			cfg.Storage.Path = fc.Storage.Path
		}
	}
	if fc.Log != nil {
		if fc.Log.Level != "" {
			cfg.Log.Level = fc.Log.Level
		}
		cfg.Log.File = fc.Log.File
	}
	if fc.Game != nil {
		cfg.Game.Seed = fc.Game.Seed
		if fc.Game.HighScores > 0 {
			cfg.Game.HighScores = fc.Game.HighScores
		}
	}
	return cfg, nil
}

// Validate checks the resolved values.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case storage.DriverMemory, storage.DriverFile, storage.DriverSQLite:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Storage.Driver != storage.DriverMemory && c.Storage.Path == "" {
		return fmt.Errorf("storage path is required for the %s driver", c.Storage.Driver)
	}
	if c.Game.HighScores <= 0 {
		return fmt.Errorf("high_scores must be positive, got %d", c.Game.HighScores)
	}
	return nil
}

// StoragePath returns where the configured driver keeps its data. A sqlite
// driver pointed at a directory gets a database file inside it.
func (c *Config) StoragePath() string {
	if c.Storage.Driver != storage.DriverSQLite {
		return c.Storage.Path
	}
	if filepath.Ext(c.Storage.Path) == "" {
		return filepath.Join(c.Storage.Path, "vuezee.db")
	}
	return c.Storage.Path
}

func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".vuezee"
	}
	return filepath.Join(dir, "vuezee")
}
