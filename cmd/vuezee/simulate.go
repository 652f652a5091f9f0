package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lox/vuezee/internal/highscores"
	"github.com/lox/vuezee/internal/metrics"
	"github.com/lox/vuezee/internal/simulator"
	"github.com/lox/vuezee/internal/statistics"
)

type SimulateCmd struct {
	Games       int           `kong:"default='1000',help='Number of games to play'"`
	Seed        int64         `kong:"default='0',help='Base RNG seed, game i uses seed+i (0 uses the configured seed, or random)'"`
	Concurrency int           `kong:"default='0',help='Games played at once (0 for one per CPU)'"`
	Strategy    string        `kong:"default='greedy',enum='greedy,random',help='Bot strategy: greedy, random'"`
	Timeout     time.Duration `kong:"default='0s',help='Abort the run after this long (0 for no limit)'"`
	MetricsFile string        `kong:"name='metrics-file',type='path',help='Write Prometheus metrics to this file'"`
	Record      bool          `kong:"help='Record finished games in the high score list'"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := c.Seed
	if seed == 0 {
		seed = cfg.Game.Seed
	}

	var board *highscores.Board
	if c.Record {
		store, b, err := openStore(cfg, logger)
		if err != nil {
			return err
		}
		defer closeStore(store, logger)
		if err := b.Load(context.Background()); err != nil {
			return err
		}
		board = b
	}

	collector := metrics.NewCollector()
	sim := simulator.New(simulator.Config{
		Games:       c.Games,
		Strategy:    c.Strategy,
		Seed:        seed,
		Concurrency: c.Concurrency,
		Timeout:     c.Timeout,
		Logger:      logger,
		Collector:   collector,
		Board:       board,
	})

	logger.Info("Starting simulation", "games", c.Games, "strategy", c.Strategy, "seed", seed)
	start := time.Now()
	stats, _, err := sim.Run(context.Background())
	if err != nil {
		return err
	}

	logger.Info("Simulation complete",
		"games", stats.Games,
		"mean", fmt.Sprintf("%.1f", stats.Mean()),
		"best", stats.Best,
		"worst", stats.Worst,
		"bonus_rate", fmt.Sprintf("%.1f%%", stats.BonusRate()*100),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	printSummary(os.Stdout, stats)

	if c.MetricsFile != "" {
		if err := collector.WriteTextfile(c.MetricsFile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		logger.Info("Wrote metrics", "path", c.MetricsFile)
	}
	return nil
}

func printSummary(w io.Writer, s *statistics.Statistics) {
	p := message.NewPrinter(language.English)
	low, high := s.ConfidenceInterval95()
	p.Fprintf(w, "Games:      %d\n", s.Games)
	p.Fprintf(w, "Mean score: %.1f (95%% CI %.1f to %.1f)\n", s.Mean(), low, high)
	p.Fprintf(w, "Median:     %.0f\n", s.Median())
	p.Fprintf(w, "Best:       %d\n", s.Best)
	p.Fprintf(w, "Worst:      %d\n", s.Worst)
	p.Fprintf(w, "Bonus rate: %.1f%%\n", s.BonusRate()*100)
	p.Fprintf(w, "Vuezees:    %d\n", s.Vuezees)
}
