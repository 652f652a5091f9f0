// Package highscores keeps the list of finished-game scores on this
// machine.
package highscores

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/vuezee/internal/storage"
)

// DefaultTop is the number of scores the high score view lists.
const DefaultTop = 5

// DateLayout formats the date an entry was recorded (en-US short date).
const DateLayout = "1/2/2006"

// Entry is one recorded score.
type Entry struct {
	Score  int    `json:"score"`
	Date   string `json:"date"`
	GameID string `json:"game_id,omitempty"`
}

// Board is the persisted list of scores. Entries are stored in the order
// they were added and sorted on read. A Board is safe for concurrent use.
type Board struct {
	mu      sync.Mutex
	store   storage.Store
	clock   quartz.Clock
	logger  *log.Logger
	entries []Entry
}

// NewBoard returns an empty board backed by store. A nil clock uses the
// real clock; a nil logger discards.
func NewBoard(store storage.Store, clock quartz.Clock, logger *log.Logger) *Board {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Board{
		store:  store,
		clock:  clock,
		logger: logger.WithPrefix("highscores"),
	}
}

// Load replaces the in-memory list with the stored one. A missing or
// unreadable list leaves the board empty; only store failures are returned.
func (b *Board) Load(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, err := b.store.Load(ctx, storage.HighScoresKey)
	if errors.Is(err, storage.ErrNotFound) {
		b.entries = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("load high scores: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		b.logger.Warn("Ignoring corrupt high score list", "error", err)
		b.entries = nil
		return nil
	}
	b.entries = entries
	return nil
}

// Add records score with today's date and saves the list.
func (b *Board) Add(ctx context.Context, score int, gameID string) (Entry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry := Entry{
		Score:  score,
		Date:   b.clock.Now().Format(DateLayout),
		GameID: gameID,
	}
	b.entries = append(b.entries, entry)

	data, err := json.Marshal(b.entries)
	if err != nil {
		return entry, fmt.Errorf("encode high scores: %w", err)
	}
	if err := b.store.Save(ctx, storage.HighScoresKey, data); err != nil {
		return entry, fmt.Errorf("save high scores: %w", err)
	}
	b.logger.Debug("Recorded high score", "score", score, "game", gameID)
	return entry, nil
}

// Len returns the number of recorded scores.
func (b *Board) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Top returns up to n entries, highest score first. Equal scores keep the
// order they were recorded in.
func (b *Board) Top(n int) []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Top(b.entries, n)
}

// Top sorts a copy of entries by score descending and truncates it to n.
func Top(entries []Entry, n int) []Entry {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	if n >= 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
