// Package bot contains automatic players that drive a game.Session through
// its public operations. They back the simulate command.
package bot

import (
	"github.com/lox/vuezee/internal/dice"
	"github.com/lox/vuezee/internal/game"
	"github.com/lox/vuezee/internal/scorecard"
)

// Decision is what a player wants to do with the dice it is looking at.
type Decision struct {
	// Score, when set, ends the turn on this category.
	Score scorecard.ID
	// Hold lists the die IDs to keep for the next roll. Ignored when Score
	// is set.
	Hold      []int
	Reasoning string
}

// Player chooses an action for the current dice.
type Player interface {
	Decide(s *game.Session) Decision
}

// PlayTurn rolls, applies holds and scores until p's decision ends the turn
// or the rolls run out. It returns the category scored, or false if the
// session refused every scoring (the game was already complete).
func PlayTurn(s *game.Session, p Player) (scorecard.ID, bool) {
	for s.Roll() {
		d := p.Decide(s)
		if d.Score != "" && s.Score(d.Score) {
			return d.Score, true
		}
		if s.RollLimitReached() {
			break
		}
		applyHolds(s, d.Hold)
	}

	if s.RollCount() == 0 {
		return "", false
	}
	// The final decision had no category; fall back to the best open one.
	id := bestCategory(s)
	if id == "" || !s.Score(id) {
		return "", false
	}
	return id, true
}

// PlayGame plays turns until the session is complete and returns the final
// score.
func PlayGame(s *game.Session, p Player) int {
	for !s.Complete() {
		if _, ok := PlayTurn(s, p); !ok {
			break
		}
	}
	return s.GrandTotal()
}

func applyHolds(s *game.Session, hold []int) {
	want := make(map[int]bool, len(hold))
	for _, id := range hold {
		want[id] = true
	}
	for _, d := range s.Dice() {
		if d.Held != want[d.ID] {
			s.ToggleHold(d.ID)
		}
	}
}

// bestCategory returns the open category with the highest potential, or ""
// when nothing can be scored.
func bestCategory(s *game.Session) scorecard.ID {
	var best scorecard.ID
	bestPoints := -1
	for _, c := range scorecard.Catalog() {
		points, ok := s.Potential(c.ID)
		if ok && points > bestPoints {
			best, bestPoints = c.ID, points
		}
	}
	return best
}

func currentValues(s *game.Session) (dice.Values, bool) {
	var v dice.Values
	for i, d := range s.Dice() {
		if !d.Value.Valid() {
			return dice.Values{}, false
		}
		v[i] = int(d.Value)
	}
	return v, true
}
