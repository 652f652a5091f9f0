package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventBus(t *testing.T) {
	t.Parallel()

	bus := NewEventBus()
	first := &recorder{}
	second := &recorder{}
	cancelFirst := bus.Subscribe(first)
	bus.Subscribe(second)

	var order []string
	bus.Subscribe(SubscriberFunc(func(e GameEvent) {
		order = append(order, e.EventType().String())
	}))

	bus.Publish(NewGameEvent{eventBase: eventBase{gameID: "g1"}})
	assert.Len(t, first.events, 1)
	assert.Len(t, second.events, 1)
	assert.Equal(t, []string{"new_game"}, order)

	cancelFirst()
	bus.Publish(HoldToggledEvent{DieID: 1})
	assert.Len(t, first.events, 1)
	assert.Len(t, second.events, 2)
	assert.Equal(t, []string{"new_game", "hold_toggled"}, order)
}

func TestEventBusCancelFunc(t *testing.T) {
	t.Parallel()

	bus := NewEventBus()
	var calls int
	count := SubscriberFunc(func(GameEvent) { calls++ })
	cancel := bus.Subscribe(count)
	keep := bus.Subscribe(count)
	defer keep()

	bus.Publish(DiceRolledEvent{})
	assert.Equal(t, 2, calls)

	assert.NotPanics(t, cancel)
	bus.Publish(DiceRolledEvent{})
	assert.Equal(t, 3, calls, "only the cancelled registration stops")

	assert.NotPanics(t, cancel, "cancel twice")
	bus.Publish(DiceRolledEvent{})
	assert.Equal(t, 4, calls)
}

func TestEventBusCancelDuringPublish(t *testing.T) {
	t.Parallel()

	bus := NewEventBus()
	rec := &recorder{}
	var cancel func()
	cancel = bus.Subscribe(SubscriberFunc(func(GameEvent) { cancel() }))
	bus.Subscribe(rec)

	bus.Publish(DiceRolledEvent{})
	bus.Publish(DiceRolledEvent{})
	assert.Len(t, rec.events, 2)
}

func TestSharedEventBus(t *testing.T) {
	t.Parallel()

	bus := NewEventBus()
	rec := &recorder{}
	bus.Subscribe(rec)

	a := NewSession(WithEventBus(bus), WithRand(newScriptedRand(1)))
	b := NewSession(WithEventBus(bus), WithRand(newScriptedRand(2)))
	a.Roll()
	b.Roll()

	if assert.Len(t, rec.events, 2) {
		assert.Equal(t, a.ID(), rec.events[0].GameID())
		assert.Equal(t, b.ID(), rec.events[1].GameID())
	}
}
