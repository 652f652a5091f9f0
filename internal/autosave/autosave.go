// Package autosave persists a session's score card and high scores in
// response to its events.
package autosave

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/vuezee/internal/game"
	"github.com/lox/vuezee/internal/highscores"
	"github.com/lox/vuezee/internal/scorecard"
	"github.com/lox/vuezee/internal/storage"
)

// DefaultTimeout bounds each store write.
const DefaultTimeout = 5 * time.Second

// Recorder is a game.EventSubscriber that writes the score card after every
// scoring and new game, and records the final score when a game completes.
// Write failures are logged and dropped; the game carries on.
type Recorder struct {
	store   storage.Store
	board   *highscores.Board
	logger  *log.Logger
	timeout time.Duration
}

// NewRecorder returns a recorder writing to store. board may be nil to skip
// high score recording.
func NewRecorder(store storage.Store, board *highscores.Board, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{
		store:   store,
		board:   board,
		logger:  logger.WithPrefix("autosave"),
		timeout: DefaultTimeout,
	}
}

// OnEvent implements game.EventSubscriber.
func (r *Recorder) OnEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.CategoryScoredEvent:
		r.saveCard(e.Card)
	case game.NewGameEvent:
		r.saveCard(scorecard.NewCard().Snapshot())
	case game.GameCompleteEvent:
		r.recordScore(e)
	}
}

func (r *Recorder) saveCard(snap scorecard.Snapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		r.logger.Error("Failed to encode scorecard", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	if err := r.store.Save(ctx, storage.ScorecardKey, data); err != nil {
		r.logger.Error("Failed to save scorecard", "error", err)
		return
	}
	r.logger.Debug("Saved scorecard", "total", snap.GrandTotal)
}

func (r *Recorder) recordScore(e game.GameCompleteEvent) {
	if r.board == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	if _, err := r.board.Add(ctx, e.FinalScore, e.GameID()); err != nil {
		r.logger.Error("Failed to record high score", "error", err, "score", e.FinalScore)
		return
	}
	r.logger.Info("Recorded high score", "score", e.FinalScore, "game", e.GameID())
}

// Resume restores the saved score card into s. It reports whether a card
// was restored; a missing or corrupt snapshot leaves s on a fresh card.
func Resume(ctx context.Context, s *game.Session, store storage.Store, logger *log.Logger) bool {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.WithPrefix("autosave")

	data, err := store.Load(ctx, storage.ScorecardKey)
	if errors.Is(err, storage.ErrNotFound) {
		logger.Debug("No saved scorecard")
		return false
	}
	if err != nil {
		logger.Warn("Failed to load scorecard", "error", err)
		return false
	}

	var snap scorecard.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		logger.Warn("Ignoring corrupt scorecard", "error", err)
		return false
	}
	if err := s.Restore(snap); err != nil {
		logger.Warn("Ignoring invalid scorecard", "error", err)
		return false
	}
	logger.Info("Resumed saved game", "total", s.GrandTotal())
	return true
}
