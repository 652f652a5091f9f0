package game

import (
	"testing"

	"github.com/lox/vuezee/internal/dice"
	"github.com/stretchr/testify/assert"
)

func TestTurn(t *testing.T) {
	t.Parallel()

	var turn Turn
	assert.Equal(t, NotRolled, turn.State())
	assert.False(t, turn.Rolled())
	assert.False(t, turn.RollLimitReached())

	for want := 1; want <= MaxRolls; want++ {
		assert.True(t, turn.advance())
		assert.Equal(t, want, turn.RollCount())
	}
	assert.Equal(t, FinalRoll, turn.State())
	assert.True(t, turn.RollLimitReached())

	assert.False(t, turn.advance())
	assert.Equal(t, MaxRolls, turn.RollCount())

	turn.Reset()
	assert.Equal(t, 0, turn.RollCount())
}

func TestTurnStateString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Not Rolled", NotRolled.String())
	assert.Equal(t, "Final Roll", FinalRoll.String())
	assert.Equal(t, "Unknown", TurnState(9).String())
}

func TestRollText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Click Roll to Get Started!", RollText(0, false))
	assert.Equal(t, "First Roll", RollText(1, false))
	assert.Equal(t, "Second Roll", RollText(2, false))
	assert.Equal(t, "Final Roll. Please Score.", RollText(3, false))

	for rolls := 0; rolls <= MaxRolls; rolls++ {
		assert.Equal(t, TextComplete, RollText(rolls, true))
	}
}

func TestDiceClass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		face dice.Face
		want string
	}{
		{dice.One, "face-one"},
		{dice.Two, "face-two"},
		{dice.Three, "face-three"},
		{dice.Four, "face-four"},
		{dice.Five, "face-five"},
		{dice.Six, "face-six"},
		{dice.Blank, "face-blank"},
		{dice.Face(7), "face-blank"},
		{dice.Face(-1), "face-blank"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DiceClass(tt.face), "face %d", tt.face)
	}
}
