package game

import "github.com/lox/vuezee/internal/dice"

// Status text shown above the dice.
const (
	TextNotRolled  = "Click Roll to Get Started!"
	TextFirstRoll  = "First Roll"
	TextSecondRoll = "Second Roll"
	TextFinalRoll  = "Final Roll. Please Score."
	TextComplete   = "Game Complete! Start a New Game to Play Again."
)

// RollText returns the status line for a roll count. A completed game
// overrides the roll count.
func RollText(rollCount int, complete bool) string {
	if complete {
		return TextComplete
	}
	switch {
	case rollCount <= 0:
		return TextNotRolled
	case rollCount == 1:
		return TextFirstRoll
	case rollCount == 2:
		return TextSecondRoll
	default:
		return TextFinalRoll
	}
}

var faceClasses = [...]string{
	dice.Blank: "face-blank",
	dice.One:   "face-one",
	dice.Two:   "face-two",
	dice.Three: "face-three",
	dice.Four:  "face-four",
	dice.Five:  "face-five",
	dice.Six:   "face-six",
}

// DiceClass maps a die face to the display class a front-end renders it
// with. Anything that is not a rolled face maps to "face-blank".
func DiceClass(f dice.Face) string {
	if !f.Valid() {
		return faceClasses[dice.Blank]
	}
	return faceClasses[f]
}
