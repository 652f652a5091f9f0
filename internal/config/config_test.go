package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/vuezee/internal/storage"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vuezee.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFileMissingUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, storage.DriverFile, cfg.Storage.Driver)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 5, cfg.Game.HighScores)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
storage {
  driver = "sqlite"
  path   = "/tmp/vuezee/scores.db"
}

log {
  level = "debug"
  file  = "vuezee.log"
}

game {
  seed        = 42
  high_scores = 10
}
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "/tmp/vuezee/scores.db", cfg.Storage.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "vuezee.log", cfg.Log.File)
	assert.Equal(t, int64(42), cfg.Game.Seed)
	assert.Equal(t, 10, cfg.Game.HighScores)
	assert.Equal(t, "/tmp/vuezee/scores.db", cfg.StoragePath())
}

func TestLoadFilePartialKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
game {
  seed = 7
}
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Game.Seed)
	assert.Equal(t, Default().Storage, cfg.Storage)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 5, cfg.Game.HighScores)
}

func TestLoadFileInvalid(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(writeConfig(t, `storage {`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse HCL file")

	_, err = LoadFile(writeConfig(t, `unknown = true`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode HCL")
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
storage {
  driver = "file"
  path   = "/data"
}
`)
	t.Setenv("VUEZEE_STORAGE_DRIVER", "memory")
	t.Setenv("VUEZEE_LOG_LEVEL", "warn")
	t.Setenv("VUEZEE_SEED", "99")
	t.Setenv("VUEZEE_HIGH_SCORES", "3")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, storage.DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "/data", cfg.Storage.Path, "unset variables keep file values")
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, int64(99), cfg.Game.Seed)
	assert.Equal(t, 3, cfg.Game.HighScores)
}

func TestLoadEnvInvalid(t *testing.T) {
	t.Setenv("VUEZEE_SEED", "not-a-number")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults"},
		{
			name:    "unknown driver",
			mutate:  func(c *Config) { c.Storage.Driver = "redis" },
			wantErr: "unknown storage driver",
		},
		{
			name:    "file without path",
			mutate:  func(c *Config) { c.Storage.Path = "" },
			wantErr: "storage path is required",
		},
		{
			name: "memory without path",
			mutate: func(c *Config) {
				c.Storage.Driver = storage.DriverMemory
				c.Storage.Path = ""
			},
		},
		{
			name:    "zero high scores",
			mutate:  func(c *Config) { c.Game.HighScores = 0 },
			wantErr: "high_scores must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			if tt.mutate != nil {
				tt.mutate(cfg)
			}
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestStoragePath(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Storage.Path = "/var/lib/vuezee"
	assert.Equal(t, "/var/lib/vuezee", cfg.StoragePath())

	cfg.Storage.Driver = storage.DriverSQLite
	assert.Equal(t, filepath.Join("/var/lib/vuezee", "vuezee.db"), cfg.StoragePath())

	cfg.Storage.Path = "/var/lib/scores.sqlite"
	assert.Equal(t, "/var/lib/scores.sqlite", cfg.StoragePath())
}
