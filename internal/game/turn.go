package game

// MaxRolls is the number of rolls allowed per turn.
const MaxRolls = 3

// TurnState is the roll progress within a turn.
type TurnState int

const (
	NotRolled TurnState = iota
	FirstRoll
	SecondRoll
	FinalRoll
)

// String returns the string representation of a turn state
func (ts TurnState) String() string {
	switch ts {
	case NotRolled:
		return "Not Rolled"
	case FirstRoll:
		return "First Roll"
	case SecondRoll:
		return "Second Roll"
	case FinalRoll:
		return "Final Roll"
	default:
		return "Unknown"
	}
}

// Turn counts the rolls taken in the current turn.
type Turn struct {
	rolls int
}

// RollCount returns the rolls taken this turn, 0..MaxRolls.
func (t *Turn) RollCount() int {
	return t.rolls
}

// State returns the turn state for the current roll count.
func (t *Turn) State() TurnState {
	return TurnState(t.rolls)
}

// Rolled reports whether at least one roll has been taken this turn.
func (t *Turn) Rolled() bool {
	return t.rolls > 0
}

// RollLimitReached reports whether the final roll has been taken.
func (t *Turn) RollLimitReached() bool {
	return t.rolls >= MaxRolls
}

// advance records a roll. It reports false, leaving the count unchanged,
// once the limit is reached.
func (t *Turn) advance() bool {
	if t.RollLimitReached() {
		return false
	}
	t.rolls++
	return true
}

// Reset starts a new turn.
func (t *Turn) Reset() {
	t.rolls = 0
}
