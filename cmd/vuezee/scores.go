package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lox/vuezee/internal/highscores"
)

type ScoresCmd struct {
	Top int `kong:"help='Number of scores to list (defaults to the configured high_scores)'"`
}

func (c *ScoresCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	store, board, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore(store, logger)

	if err := board.Load(context.Background()); err != nil {
		return err
	}

	n := cfg.Game.HighScores
	if c.Top > 0 {
		n = c.Top
	}
	printScores(os.Stdout, board.Top(n))
	return nil
}

func printScores(w io.Writer, entries []highscores.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No high scores yet")
		return
	}
	p := message.NewPrinter(language.English)
	for i, e := range entries {
		p.Fprintf(w, "%2d. %6d  %s\n", i+1, e.Score, e.Date)
	}
}
