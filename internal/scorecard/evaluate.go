package scorecard

import "github.com/lox/vuezee/internal/dice"

// Evaluate returns the points c's rule awards for v on a first scoring.
// The upper bonus always evaluates to zero; it is awarded by the card.
func Evaluate(c Category, v dice.Values) int {
	counts := v.Counts()

	switch c.Rule {
	case RuleFace:
		return c.Face * counts[c.Face]
	case RuleOfAKind:
		if maxCount(counts) >= c.Face {
			return v.Sum()
		}
		return 0
	case RuleFullHouse:
		if isFullHouse(counts) {
			return FullHousePoints
		}
		return 0
	case RuleSmallStraight:
		if longestRun(counts) >= 4 {
			return SmallStraightPoints
		}
		return 0
	case RuleLargeStraight:
		if longestRun(counts) == dice.Count {
			return LargeStraightPoints
		}
		return 0
	case RuleFiveOfAKind:
		if IsFiveOfAKind(v) {
			return VuezeePoints
		}
		return 0
	case RuleChance:
		return v.Sum()
	default:
		return 0
	}
}

// IsFiveOfAKind reports whether all dice show the same face.
func IsFiveOfAKind(v dice.Values) bool {
	return maxCount(v.Counts()) == dice.Count
}

func maxCount(counts [7]int) int {
	best := 0
	for face := 1; face <= 6; face++ {
		if counts[face] > best {
			best = counts[face]
		}
	}
	return best
}

// isFullHouse requires one face showing exactly three times and a different
// face showing exactly twice.
func isFullHouse(counts [7]int) bool {
	three, two := false, false
	for face := 1; face <= 6; face++ {
		switch counts[face] {
		case 3:
			three = true
		case 2:
			two = true
		}
	}
	return three && two
}

// longestRun returns the length of the longest sequence of consecutive
// faces present at least once.
func longestRun(counts [7]int) int {
	best, run := 0, 0
	for face := 1; face <= 6; face++ {
		if counts[face] == 0 {
			run = 0
			continue
		}
		run++
		if run > best {
			best = run
		}
	}
	return best
}
