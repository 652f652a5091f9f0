package game

import (
	"time"

	"github.com/lox/vuezee/internal/dice"
	"github.com/lox/vuezee/internal/scorecard"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for session events
const (
	EventTypeNewGame        EventType = "new_game"
	EventTypeDiceRolled     EventType = "dice_rolled"
	EventTypeHoldToggled    EventType = "hold_toggled"
	EventTypeCategoryScored EventType = "category_scored"
	EventTypeGameComplete   EventType = "game_complete"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any state change of a session
type GameEvent interface {
	EventType() EventType
	GameID() string
	Timestamp() time.Time
}

type eventBase struct {
	gameID    string
	timestamp time.Time
}

func (e eventBase) GameID() string       { return e.gameID }
func (e eventBase) Timestamp() time.Time { return e.timestamp }

// NewGameEvent is published when a session starts a fresh game.
type NewGameEvent struct {
	eventBase
}

func (e NewGameEvent) EventType() EventType { return EventTypeNewGame }

// DiceRolledEvent is published after a successful roll.
type DiceRolledEvent struct {
	eventBase
	Dice      []dice.Die
	RollCount int
}

func (e DiceRolledEvent) EventType() EventType { return EventTypeDiceRolled }

// HoldToggledEvent is published when a die is held or released.
type HoldToggledEvent struct {
	eventBase
	DieID int
	Held  bool
}

func (e HoldToggledEvent) EventType() EventType { return EventTypeHoldToggled }

// CategoryScoredEvent is published after a category is scored. Card is the
// state of the whole card after the scoring.
type CategoryScoredEvent struct {
	eventBase
	Outcome    scorecard.Outcome
	Dice       dice.Values
	GrandTotal int
	Card       scorecard.Snapshot
}

func (e CategoryScoredEvent) EventType() EventType { return EventTypeCategoryScored }

// GameCompleteEvent is published once, right after the scoring that fills
// the last category.
type GameCompleteEvent struct {
	eventBase
	FinalScore   int
	BonusAwarded bool
}

func (e GameCompleteEvent) EventType() EventType { return EventTypeGameComplete }

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// SubscriberFunc adapts a function to EventSubscriber.
type SubscriberFunc func(event GameEvent)

// OnEvent calls f(event).
func (f SubscriberFunc) OnEvent(event GameEvent) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	// Subscribe registers subscriber and returns a func that removes it.
	Subscribe(subscriber EventSubscriber) (cancel func())
	Publish(event GameEvent)
}

type subscription struct {
	id  uint64
	sub EventSubscriber
}

// SimpleEventBus is a synchronous in-memory event bus. Subscribers are
// called in subscription order on the publishing goroutine.
type SimpleEventBus struct {
	subscribers []subscription
	nextID      uint64
}

// NewEventBus creates a new event bus
func NewEventBus() *SimpleEventBus {
	return &SimpleEventBus{
		subscribers: make([]subscription, 0),
	}
}

// Subscribe adds a subscriber to receive events. Calling the returned
// cancel func removes it; later calls are no-ops. Subscribers are tracked
// by registration, so SubscriberFunc values and repeated registrations of
// the same subscriber are removed independently.
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) (cancel func()) {
	bus.nextID++
	id := bus.nextID
	bus.subscribers = append(bus.subscribers, subscription{id: id, sub: subscriber})
	return func() { bus.remove(id) }
}

func (bus *SimpleEventBus) remove(id uint64) {
	for i, s := range bus.subscribers {
		if s.id == id {
			bus.subscribers = append(bus.subscribers[:i:i], bus.subscribers[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, s := range bus.subscribers {
		s.sub.OnEvent(event)
	}
}
