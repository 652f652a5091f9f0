package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/vuezee/internal/dice"
	"github.com/lox/vuezee/internal/randutil"
	"github.com/lox/vuezee/internal/scorecard"
)

// SessionOption configures a Session.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	rng    randutil.Source
	clock  quartz.Clock
	logger *log.Logger
	bus    EventBus
}

// WithRand sets the random source used for rolls.
func WithRand(src randutil.Source) SessionOption {
	return func(c *sessionConfig) {
		c.rng = src
	}
}

// WithClock sets the clock used to timestamp events.
func WithClock(clock quartz.Clock) SessionOption {
	return func(c *sessionConfig) {
		c.clock = clock
	}
}

// WithLogger sets the logger. The session logs under the "game" prefix.
func WithLogger(logger *log.Logger) SessionOption {
	return func(c *sessionConfig) {
		c.logger = logger
	}
}

// WithEventBus publishes session events on bus instead of a private bus.
func WithEventBus(bus EventBus) SessionOption {
	return func(c *sessionConfig) {
		c.bus = bus
	}
}

// Session is one playable game. It is not safe for concurrent use; a
// session is owned by a single front-end.
type Session struct {
	id     string
	dice   *dice.Set
	card   *scorecard.Card
	turn   Turn
	rng    randutil.Source
	clock  quartz.Clock
	bus    EventBus
	logger *log.Logger
}

// NewSession creates a session ready for its first roll.
func NewSession(opts ...SessionOption) *Session {
	cfg := sessionConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = randutil.NewRandom()
	}
	if cfg.clock == nil {
		cfg.clock = quartz.NewReal()
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}
	if cfg.bus == nil {
		cfg.bus = NewEventBus()
	}

	return &Session{
		id:     newGameID(),
		dice:   dice.NewSet(),
		card:   scorecard.NewCard(),
		rng:    cfg.rng,
		clock:  cfg.clock,
		bus:    cfg.bus,
		logger: cfg.logger.WithPrefix("game"),
	}
}

func newGameID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// ID identifies the current game. It changes on NewGame.
func (s *Session) ID() string { return s.id }

// Events returns the bus the session publishes on.
func (s *Session) Events() EventBus { return s.bus }

// Subscribe is shorthand for s.Events().Subscribe(sub).
func (s *Session) Subscribe(sub EventSubscriber) (cancel func()) { return s.bus.Subscribe(sub) }

// Dice returns a copy of the dice in order.
func (s *Session) Dice() []dice.Die { return s.dice.Dice() }

// HeldCount returns how many dice are held.
func (s *Session) HeldCount() int { return s.dice.HeldCount() }

// RollCount returns the rolls taken this turn.
func (s *Session) RollCount() int { return s.turn.RollCount() }

// TurnState returns the roll progress of the current turn.
func (s *Session) TurnState() TurnState { return s.turn.State() }

// RollLimitReached reports whether the final roll of the turn was taken.
func (s *Session) RollLimitReached() bool { return s.turn.RollLimitReached() }

// Complete reports whether every category, bonus included, is scored.
func (s *Session) Complete() bool { return s.card.Complete() }

// RollText returns the status line for the current state.
func (s *Session) RollText() string { return RollText(s.turn.RollCount(), s.card.Complete()) }

// Entry returns the state of one category.
func (s *Session) Entry(id scorecard.ID) (scorecard.Entry, bool) { return s.card.Entry(id) }

// Open returns the categories that can still be filled.
func (s *Session) Open() []scorecard.ID { return s.card.Open() }

// UpperTotal, LowerTotal and GrandTotal expose the card totals.
func (s *Session) UpperTotal() int { return s.card.UpperTotal() }
func (s *Session) LowerTotal() int { return s.card.LowerTotal() }
func (s *Session) GrandTotal() int { return s.card.GrandTotal() }

// Snapshot returns the serializable state of the card.
func (s *Session) Snapshot() scorecard.Snapshot { return s.card.Snapshot() }

// Potential returns what scoring id would add with the current dice. ok is
// false when Score would be ignored.
func (s *Session) Potential(id scorecard.ID) (points int, ok bool) {
	if !s.turn.Rolled() {
		return 0, false
	}
	v, ok := s.dice.Values()
	if !ok {
		return 0, false
	}
	return s.card.Potential(id, v)
}

// CanRoll reports whether Roll would apply.
func (s *Session) CanRoll() bool {
	return !s.turn.RollLimitReached() && !s.card.Complete()
}

// Roll rolls every unheld die. It is ignored once the turn's final roll was
// taken or the game is complete.
func (s *Session) Roll() bool {
	if !s.CanRoll() {
		s.logger.Debug("Roll ignored", "rolls", s.turn.RollCount(), "complete", s.card.Complete())
		return false
	}

	s.dice.RollAll(s.rng)
	s.turn.advance()

	all := s.dice.Dice()
	s.logger.Debug("Rolled dice", "roll", s.turn.RollCount(), "dice", formatDice(all))
	s.bus.Publish(DiceRolledEvent{
		eventBase: s.eventBase(),
		Dice:      all,
		RollCount: s.turn.RollCount(),
	})
	return true
}

// ToggleHold holds or releases a die. It is ignored before the first roll
// of a turn and for unknown die IDs.
func (s *Session) ToggleHold(dieID int) bool {
	if !s.turn.Rolled() {
		return false
	}
	if !s.dice.ToggleHeld(dieID) {
		return false
	}

	d, _ := s.dice.Die(dieID)
	s.logger.Debug("Toggled hold", "die", dieID, "held", d.Held, "held_count", s.dice.HeldCount())
	s.bus.Publish(HoldToggledEvent{
		eventBase: s.eventBase(),
		DieID:     dieID,
		Held:      d.Held,
	})
	return true
}

// Score fills category id with the current dice and starts the next turn.
// It is ignored before the first roll of a turn, for unknown categories,
// for the upper bonus and for categories that are already filled (except a
// qualifying repeat of a scored five of a kind).
func (s *Session) Score(id scorecard.ID) bool {
	if !s.turn.Rolled() {
		return false
	}
	v, ok := s.dice.Values()
	if !ok {
		return false
	}

	out, ok := s.card.Score(id, v)
	if !ok {
		s.logger.Debug("Score ignored", "category", id)
		return false
	}

	s.logger.Info("Scored category",
		"category", id,
		"points", out.Points,
		"repeat", out.Repeat,
		"bonus", out.BonusAwarded,
		"total", s.card.GrandTotal())

	s.turn.Reset()
	s.dice.Reset()

	s.bus.Publish(CategoryScoredEvent{
		eventBase:  s.eventBase(),
		Outcome:    out,
		Dice:       v,
		GrandTotal: s.card.GrandTotal(),
		Card:       s.card.Snapshot(),
	})

	if s.card.Complete() {
		bonus, _ := s.card.Entry(scorecard.Bonus)
		s.logger.Info("Game complete", "id", s.id, "score", s.card.GrandTotal())
		s.bus.Publish(GameCompleteEvent{
			eventBase:    s.eventBase(),
			FinalScore:   s.card.GrandTotal(),
			BonusAwarded: bonus.Score > 0,
		})
	}
	return true
}

// NewGame clears the dice, the card and the turn and assigns a new game ID.
func (s *Session) NewGame() {
	s.dice.Reset()
	s.card.Reset()
	s.turn.Reset()
	s.id = newGameID()

	s.logger.Info("New game", "id", s.id)
	s.bus.Publish(NewGameEvent{eventBase: s.eventBase()})
}

// Restore loads a saved card and starts a fresh turn on it. The dice are
// cleared; saved games resume between turns.
func (s *Session) Restore(snap scorecard.Snapshot) error {
	if err := s.card.Restore(snap); err != nil {
		return fmt.Errorf("restore scorecard: %w", err)
	}
	s.dice.Reset()
	s.turn.Reset()
	s.logger.Debug("Restored scorecard", "total", s.card.GrandTotal(), "complete", s.card.Complete())
	return nil
}

func (s *Session) eventBase() eventBase {
	return eventBase{gameID: s.id, timestamp: s.clock.Now()}
}

func formatDice(all []dice.Die) string {
	b := make([]byte, 0, len(all)*2)
	for i, d := range all {
		if i > 0 {
			b = append(b, ' ')
		}
		b = append(b, d.Value.String()...)
		if d.Held {
			b = append(b, '*')
		}
	}
	return string(b)
}
