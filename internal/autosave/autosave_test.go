package autosave

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/vuezee/internal/game"
	"github.com/lox/vuezee/internal/highscores"
	"github.com/lox/vuezee/internal/randutil"
	"github.com/lox/vuezee/internal/scorecard"
	"github.com/lox/vuezee/internal/storage"
)

// failingStore rejects every write.
type failingStore struct {
	*storage.Memory
}

func (failingStore) Save(context.Context, string, []byte) error {
	return errors.New("disk full")
}

func loadCard(t *testing.T, store storage.Store) scorecard.Snapshot {
	t.Helper()
	data, err := store.Load(context.Background(), storage.ScorecardKey)
	require.NoError(t, err)
	var snap scorecard.Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	return snap
}

func TestRecorderSavesScorecard(t *testing.T) {
	t.Parallel()

	store := storage.NewMemory()
	s := game.NewSession(game.WithRand(randutil.New(11)))
	s.Subscribe(NewRecorder(store, nil, nil))

	require.True(t, s.Roll())
	_, err := store.Load(context.Background(), storage.ScorecardKey)
	assert.ErrorIs(t, err, storage.ErrNotFound, "rolling does not save")

	require.True(t, s.Score(scorecard.Chance))
	snap := loadCard(t, store)
	assert.Equal(t, s.GrandTotal(), snap.GrandTotal)
	assert.Equal(t, s.Snapshot(), snap)

	s.NewGame()
	snap = loadCard(t, store)
	assert.Zero(t, snap.GrandTotal)
}

func TestRecorderRecordsHighScore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := storage.NewMemory()
	clock := quartz.NewMock(t)
	clock.Set(time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC))
	board := highscores.NewBoard(store, clock, nil)

	s := game.NewSession(game.WithRand(randutil.New(3)))
	s.Subscribe(NewRecorder(store, board, nil))

	for _, id := range s.Open() {
		require.True(t, s.Roll())
		require.True(t, s.Score(id))
	}
	require.True(t, s.Complete())

	reloaded := highscores.NewBoard(store, clock, nil)
	require.NoError(t, reloaded.Load(ctx))
	top := reloaded.Top(highscores.DefaultTop)
	require.Len(t, top, 1)
	assert.Equal(t, s.GrandTotal(), top[0].Score)
	assert.Equal(t, s.ID(), top[0].GameID)
	assert.Equal(t, "10/18/2026", top[0].Date)
}

func TestRecorderIgnoresWriteFailures(t *testing.T) {
	t.Parallel()

	store := failingStore{storage.NewMemory()}
	s := game.NewSession(game.WithRand(randutil.New(8)))
	s.Subscribe(NewRecorder(store, highscores.NewBoard(store, nil, nil), nil))

	require.True(t, s.Roll())
	assert.True(t, s.Score(scorecard.Chance), "a failed save does not undo the scoring")
	assert.Equal(t, 0, s.RollCount())
}

func TestResume(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := storage.NewMemory()

	first := game.NewSession(game.WithRand(randutil.New(21)))
	first.Subscribe(NewRecorder(store, nil, nil))
	require.True(t, first.Roll())
	require.True(t, first.Score(scorecard.Chance))
	require.True(t, first.Roll())
	require.True(t, first.Score(scorecard.Aces))

	second := game.NewSession()
	assert.True(t, Resume(ctx, second, store, nil))
	assert.Equal(t, first.Snapshot(), second.Snapshot())
	assert.Equal(t, 0, second.RollCount())
}

func TestResumeFallsBackToFreshCard(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tests := []struct {
		name  string
		value []byte
	}{
		{"missing", nil},
		{"not json", []byte("{{")},
		{"unknown category", []byte(`{"upper_section":[{"id":"sevens","score":7,"scored":true}]}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storage.NewMemory()
			if tt.value != nil {
				require.NoError(t, store.Save(ctx, storage.ScorecardKey, tt.value))
			}

			s := game.NewSession()
			assert.False(t, Resume(ctx, s, store, nil))
			assert.Zero(t, s.GrandTotal())
			assert.Len(t, s.Open(), scorecard.Size-1)
		})
	}
}
