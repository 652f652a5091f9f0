package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/vuezee/internal/config"
	"github.com/lox/vuezee/internal/highscores"
	"github.com/lox/vuezee/internal/storage"
)

// Globals are the flags shared by every command.
type Globals struct {
	Config   string `kong:"default='vuezee.hcl',type='path',help='HCL config file (missing file uses defaults)'"`
	LogLevel string `kong:"name='log-level',help='Override the configured log level (debug, info, warn, error)'"`
}

// load resolves the config: file, then environment, then flags.
func (g *Globals) load() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if level := strings.TrimSpace(g.LogLevel); level != "" {
		cfg.Log.Level = level
	}
	return cfg, nil
}

// newLogger builds the logger described by cfg. Output goes to the
// configured log file, or to fallback when none is set. The returned
// function closes the file.
func newLogger(cfg config.LogConfig, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	out := fallback
	closeFn := func() {}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closeFn = func() {
			if err := f.Close(); err != nil {
				log.Error("Failed to close log file", "error", err)
			}
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	return logger, closeFn, nil
}

// openStore opens the configured store and the high score board on it.
func openStore(cfg *config.Config, logger *log.Logger) (storage.Store, *highscores.Board, error) {
	store, err := storage.Open(cfg.Storage.Driver, cfg.StoragePath())
	if err != nil {
		return nil, nil, fmt.Errorf("open %s store: %w", cfg.Storage.Driver, err)
	}
	logger.Debug("Opened store", "driver", cfg.Storage.Driver, "path", cfg.StoragePath())
	return store, highscores.NewBoard(store, nil, logger), nil
}

func closeStore(store storage.Store, logger *log.Logger) {
	if err := store.Close(); err != nil {
		logger.Error("Failed to close store", "error", err)
	}
}
