package game

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// scriptedRand returns the configured faces (1-6) in order, wrapping around.
type scriptedRand struct {
	faces []int
	index int
}

func newScriptedRand(faces ...int) *scriptedRand {
	return &scriptedRand{faces: faces}
}

func (r *scriptedRand) IntN(n int) int {
	f := r.faces[r.index%len(r.faces)]
	r.index++
	return (f - 1) % n
}

// recorder captures published events.
type recorder struct {
	events []GameEvent
}

func (r *recorder) OnEvent(event GameEvent) {
	r.events = append(r.events, event)
}

func (r *recorder) types() []EventType {
	out := make([]EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.EventType()
	}
	return out
}

var testEpoch = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

func newTestSession(t *testing.T, faces ...int) (*Session, *recorder, *quartz.Mock) {
	t.Helper()

	clock := quartz.NewMock(t)
	clock.Set(testEpoch)

	rec := &recorder{}
	s := NewSession(
		WithRand(newScriptedRand(faces...)),
		WithClock(clock),
		WithLogger(log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})),
	)
	s.Subscribe(rec)
	return s, rec, clock
}
