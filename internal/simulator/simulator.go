// Package simulator autoplays vuezee games with a bot and aggregates the
// scores.
package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/vuezee/internal/bot"
	"github.com/lox/vuezee/internal/game"
	"github.com/lox/vuezee/internal/highscores"
	"github.com/lox/vuezee/internal/metrics"
	"github.com/lox/vuezee/internal/randutil"
	"github.com/lox/vuezee/internal/scorecard"
	"github.com/lox/vuezee/internal/statistics"
)

// Strategies accepted by Config.Strategy.
const (
	StrategyGreedy = "greedy"
	StrategyRandom = "random"
)

// Config holds configuration for running simulations
type Config struct {
	Games       int
	Strategy    string
	Seed        int64 // Game i uses Seed+i; 0 rolls randomly
	Concurrency int   // Games played at once, 0 for GOMAXPROCS
	Timeout     time.Duration
	Logger      *log.Logger

	// Optional consumers of finished games
	Collector *metrics.Collector
	Board     *highscores.Board
}

// Simulator runs vuezee game simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Strategy == "" {
		config.Strategy = StrategyGreedy
	}
	if config.Concurrency <= 0 {
		config.Concurrency = runtime.GOMAXPROCS(0)
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	return &Simulator{config: config}
}

// Run plays every game and returns the aggregated statistics along with the
// per-game results in game order.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, []statistics.GameResult, error) {
	if s.config.Games <= 0 {
		return nil, nil, fmt.Errorf("games must be positive, got %d", s.config.Games)
	}
	if _, err := NewPlayer(s.config.Strategy, randutil.New(1), nil); err != nil {
		return nil, nil, err
	}

	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	results := make([]statistics.GameResult, s.config.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Concurrency)

	for i := range s.config.Games {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("game %d not started: %w", i, err)
			}
			result, err := s.playGame(ctx, i)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Add(r)
	}

	// Validate statistics before returning
	if err := stats.Validate(); err != nil {
		return nil, nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, results, nil
}

// playGame plays game i to completion with its own session and RNG.
func (s *Simulator) playGame(ctx context.Context, i int) (statistics.GameResult, error) {
	var (
		rng  randutil.Source
		seed int64
	)
	if s.config.Seed != 0 {
		seed = s.config.Seed + int64(i)
		rng = randutil.New(seed)
	} else {
		rng = randutil.NewRandom()
	}

	player, err := NewPlayer(s.config.Strategy, rng, s.config.Logger)
	if err != nil {
		return statistics.GameResult{}, err
	}

	session := game.NewSession(game.WithRand(rng))
	if s.config.Collector != nil {
		session.Subscribe(s.config.Collector)
	}
	session.NewGame()

	score := bot.PlayGame(session, player)
	if !session.Complete() {
		return statistics.GameResult{}, fmt.Errorf("game %d stopped before completion (seed: %d)", i, seed)
	}

	if s.config.Board != nil {
		if _, err := s.config.Board.Add(ctx, score, session.ID()); err != nil {
			return statistics.GameResult{}, fmt.Errorf("record game %d: %w", i, err)
		}
	}

	bonus, _ := session.Entry(scorecard.Bonus)
	vuezee, _ := session.Entry(scorecard.Vuezee)
	s.config.Logger.Debug("Game finished", "game", i, "id", session.ID(), "score", score, "seed", seed)

	return statistics.GameResult{
		Score:      score,
		UpperTotal: session.UpperTotal(),
		LowerTotal: session.LowerTotal(),
		Seed:       seed,
		Bonus:      bonus.Score > 0,
		Vuezees:    VuezeeCount(vuezee.Score),
	}, nil
}

// NewPlayer creates the bot for a strategy. rng is only used by the random
// strategy.
func NewPlayer(strategy string, rng randutil.Source, logger *log.Logger) (bot.Player, error) {
	switch strategy {
	case StrategyGreedy:
		return bot.NewGreedy(logger), nil
	case StrategyRandom:
		return bot.NewRandom(rng), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", strategy)
	}
}

// VuezeeCount returns how many five of a kinds a category score holds.
func VuezeeCount(score int) int {
	if score < scorecard.VuezeePoints {
		return 0
	}
	return 1 + (score-scorecard.VuezeePoints)/scorecard.VuezeeRepeatPoints
}
