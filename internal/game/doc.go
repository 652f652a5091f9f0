// Package game implements a single-player round of Vuezee, a five-dice
// game in the Yahtzee family.
//
// The main type is Session, which owns the dice, the score card and the
// turn state for one game and exposes the operations a front-end invokes.
//
// # Basic Usage
//
//	s := game.NewSession()
//	s.Roll()
//	s.ToggleHold(1)
//	s.Roll()
//	s.Score(scorecard.FullHouse)
//	if s.Complete() {
//	    fmt.Println(s.GrandTotal())
//	}
//
// Invalid calls (rolling past the limit, scoring before a roll, scoring a
// filled category, holding before the first roll) are ignored and report
// false, so a front-end can call them without checking first.
//
// # Deterministic Testing
//
// Inject the random source and clock:
//
//	s := game.NewSession(
//	    game.WithRand(randutil.New(42)),
//	    game.WithClock(quartz.NewMock(t)),
//	)
//
// # State Changes
//
// Every applied operation publishes an event on the session's EventBus.
// Persistence and metrics subscribe to it; the session itself never does
// any I/O.
package game
