package bot

import (
	"github.com/lox/vuezee/internal/game"
	"github.com/lox/vuezee/internal/randutil"
	"github.com/lox/vuezee/internal/scorecard"
)

// Random holds random dice and scores a random open category. It is a
// baseline for the greedy player.
type Random struct {
	rng randutil.Source
}

// NewRandom creates a random player.
func NewRandom(rng randutil.Source) *Random {
	return &Random{rng: rng}
}

// Decide implements Player.
func (r *Random) Decide(s *game.Session) Decision {
	if s.RollLimitReached() || r.rng.IntN(3) == 0 {
		var open []scorecard.ID
		for _, c := range scorecard.Catalog() {
			if _, ok := s.Potential(c.ID); ok {
				open = append(open, c.ID)
			}
		}
		if len(open) > 0 {
			return Decision{Score: open[r.rng.IntN(len(open))], Reasoning: "random category"}
		}
	}

	var hold []int
	for _, d := range s.Dice() {
		if r.rng.IntN(2) == 0 {
			hold = append(hold, d.ID)
		}
	}
	return Decision{Hold: hold, Reasoning: "random holds"}
}
