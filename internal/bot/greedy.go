package bot

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/lox/vuezee/internal/dice"
	"github.com/lox/vuezee/internal/game"
	"github.com/lox/vuezee/internal/scorecard"
)

// sacrificeOrder is the order categories are zeroed in when nothing scores.
var sacrificeOrder = map[scorecard.ID]int{
	scorecard.Aces:          1,
	scorecard.Twos:          2,
	scorecard.Threes:        3,
	scorecard.Vuezee:        4,
	scorecard.LargeStraight: 5,
	scorecard.FourOfAKind:   6,
	scorecard.Fours:         7,
	scorecard.SmallStraight: 8,
	scorecard.FullHouse:     9,
	scorecard.ThreeOfAKind:  10,
	scorecard.Fives:         11,
	scorecard.Sixes:         12,
	scorecard.Chance:        13,
}

// Greedy takes made hands when it sees them, otherwise chases straights or
// the most common face, and scores the most valuable open category.
type Greedy struct {
	logger *log.Logger
}

// NewGreedy creates a greedy player.
func NewGreedy(logger *log.Logger) *Greedy {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Greedy{logger: logger.WithPrefix("bot")}
}

// Decide implements Player.
func (g *Greedy) Decide(s *game.Session) Decision {
	v, ok := currentValues(s)
	if !ok {
		return Decision{Reasoning: "dice not rolled"}
	}

	if d, ok := g.madeHand(s); ok {
		return d
	}

	if s.RollLimitReached() {
		id := g.choose(s)
		return Decision{Score: id, Reasoning: "final roll"}
	}

	counts := v.Counts()
	if isOpen(s, scorecard.SmallStraight) || isOpen(s, scorecard.LargeStraight) {
		if run := longestRun(counts); len(run) >= 3 {
			return Decision{
				Hold:      holdFaces(s, run),
				Reasoning: "chasing a straight",
			}
		}
	}

	face := mostCommon(counts)
	var hold []int
	for _, d := range s.Dice() {
		if int(d.Value) == face {
			hold = append(hold, d.ID)
		}
	}
	g.logger.Debug("Holding most common face", "face", face, "count", counts[face], "roll", s.RollCount())
	return Decision{Hold: hold, Reasoning: "keeping the most common face"}
}

// madeHand scores hands that rerolling cannot improve.
func (g *Greedy) madeHand(s *game.Session) (Decision, bool) {
	for _, id := range []scorecard.ID{scorecard.Vuezee, scorecard.LargeStraight} {
		if points, ok := s.Potential(id); ok && points > 0 {
			return Decision{Score: id, Reasoning: "made hand"}, true
		}
	}
	if !isOpen(s, scorecard.LargeStraight) {
		if points, ok := s.Potential(scorecard.SmallStraight); ok && points > 0 {
			return Decision{Score: scorecard.SmallStraight, Reasoning: "small straight, large already used"}, true
		}
	}
	return Decision{}, false
}

// choose picks the open category worth the most, nudged towards the upper
// bonus and away from spending chance early. With nothing worth points the
// cheapest category is zeroed.
func (g *Greedy) choose(s *game.Session) scorecard.ID {
	var best scorecard.ID
	bestValue := math.MinInt

	for _, c := range scorecard.Catalog() {
		points, ok := s.Potential(c.ID)
		if !ok {
			continue
		}

		value := points * 10
		switch {
		case points == 0:
			value = -sacrificeOrder[c.ID]
		case c.Rule == scorecard.RuleFace && points >= 3*c.Face:
			value += 50
		case c.ID == scorecard.Chance:
			value -= 60
		}

		if value > bestValue {
			best, bestValue = c.ID, value
		}
	}

	g.logger.Debug("Chose category", "category", best, "value", bestValue)
	return best
}

func isOpen(s *game.Session, id scorecard.ID) bool {
	e, ok := s.Entry(id)
	return ok && !e.Scored
}

// longestRun returns the faces of the longest consecutive sequence present.
func longestRun(counts [7]int) []int {
	var best, run []int
	for face := 1; face <= 6; face++ {
		if counts[face] == 0 {
			run = nil
			continue
		}
		run = append(run, face)
		if len(run) > len(best) {
			best = append([]int(nil), run...)
		}
	}
	return best
}

// mostCommon returns the face with the highest count, preferring the higher
// face on ties.
func mostCommon(counts [7]int) int {
	best := 1
	for face := 2; face <= 6; face++ {
		if counts[face] >= counts[best] {
			best = face
		}
	}
	return best
}

// holdFaces returns one die ID per requested face.
func holdFaces(s *game.Session, faces []int) []int {
	need := make(map[dice.Face]bool, len(faces))
	for _, f := range faces {
		need[dice.Face(f)] = true
	}
	var hold []int
	for _, d := range s.Dice() {
		if need[d.Value] {
			hold = append(hold, d.ID)
			delete(need, d.Value)
		}
	}
	return hold
}
