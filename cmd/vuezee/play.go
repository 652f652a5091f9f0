package main

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/vuezee/internal/autosave"
	"github.com/lox/vuezee/internal/game"
	"github.com/lox/vuezee/internal/randutil"
	"github.com/lox/vuezee/internal/tui"
)

type PlayCmd struct {
	Fresh bool `kong:"help='Start a new game instead of resuming the saved scorecard'"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}

	// The terminal belongs to the UI, so only a log file gets output.
	logger, closeLog, err := newLogger(cfg.Log, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	store, board, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore(store, logger)

	ctx := context.Background()
	if err := board.Load(ctx); err != nil {
		logger.Warn("High scores unavailable", "error", err)
	}

	session := game.NewSession(
		game.WithRand(randutil.FromSeed(cfg.Game.Seed)),
		game.WithLogger(logger),
	)
	if !c.Fresh {
		autosave.Resume(ctx, session, store, logger)
	}
	session.Subscribe(autosave.NewRecorder(store, board, logger))

	model := tui.NewModel(session,
		tui.WithHighScores(board, cfg.Game.HighScores),
		tui.WithLogger(logger),
	)
	logger.Info("Starting game", "id", session.ID(), "score", session.GrandTotal())

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
