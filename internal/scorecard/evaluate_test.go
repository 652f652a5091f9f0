package scorecard

import (
	"testing"

	"github.com/lox/vuezee/internal/dice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		category ID
		dice     dice.Values
		want     int
	}{
		{"aces counted", Aces, dice.MustValues(1, 1, 2, 3, 1), 3},
		{"aces absent", Aces, dice.MustValues(2, 2, 2, 3, 4), 0},
		{"twos", Twos, dice.MustValues(2, 2, 2, 3, 4), 6},
		{"fives", Fives, dice.MustValues(2, 6, 5, 5, 4), 10},
		{"sixes", Sixes, dice.MustValues(6, 6, 6, 6, 6), 30},
		{"three of a kind", ThreeOfAKind, dice.MustValues(2, 2, 2, 3, 4), 13},
		{"three of a kind from four", ThreeOfAKind, dice.MustValues(2, 2, 2, 2, 4), 12},
		{"three of a kind missing", ThreeOfAKind, dice.MustValues(1, 2, 3, 2, 4), 0},
		{"four of a kind", FourOfAKind, dice.MustValues(1, 2, 1, 1, 1), 6},
		{"four of a kind missing", FourOfAKind, dice.MustValues(1, 2, 6, 1, 1), 0},
		{"full house", FullHouse, dice.MustValues(1, 1, 2, 2, 2), 25},
		{"full house unordered", FullHouse, dice.MustValues(1, 2, 1, 1, 2), 25},
		{"full house two pair", FullHouse, dice.MustValues(5, 2, 1, 1, 2), 0},
		{"full house five of a kind", FullHouse, dice.MustValues(3, 3, 3, 3, 3), 0},
		{"small straight low", SmallStraight, dice.MustValues(1, 2, 3, 4, 1), 30},
		{"small straight mid", SmallStraight, dice.MustValues(3, 2, 1, 4, 5), 30},
		{"small straight high", SmallStraight, dice.MustValues(6, 3, 4, 5, 6), 30},
		{"small straight gap", SmallStraight, dice.MustValues(1, 2, 4, 5, 6), 0},
		{"large straight low", LargeStraight, dice.MustValues(1, 2, 3, 4, 5), 40},
		{"large straight high", LargeStraight, dice.MustValues(6, 2, 3, 4, 5), 40},
		{"large straight of four", LargeStraight, dice.MustValues(1, 2, 3, 4, 4), 0},
		{"large straight gap", LargeStraight, dice.MustValues(1, 2, 3, 4, 6), 0},
		{"vuezee", Vuezee, dice.MustValues(4, 4, 4, 4, 4), 50},
		{"vuezee missing", Vuezee, dice.MustValues(4, 4, 4, 4, 3), 0},
		{"chance", Chance, dice.MustValues(1, 3, 5, 6, 6), 21},
		{"bonus never evaluates", Bonus, dice.MustValues(6, 6, 6, 6, 6), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, ok := Lookup(tt.category)
			require.True(t, ok)
			assert.Equal(t, tt.want, Evaluate(cat, tt.dice))
		})
	}
}

func TestCatalog(t *testing.T) {
	t.Parallel()

	all := Catalog()
	require.Len(t, all, Size)
	assert.Len(t, SectionCategories(Upper), 7)
	assert.Len(t, SectionCategories(Lower), 7)

	seen := make(map[ID]bool)
	for _, c := range all {
		assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
		assert.NotEmpty(t, c.Label)
		assert.NotEmpty(t, c.HowTo)
	}

	// Mutating the returned slice must not touch the catalog.
	all[0].Label = "changed"
	aces, _ := Lookup(Aces)
	assert.Equal(t, "Aces", aces.Label)

	_, ok := Lookup("yahtzee")
	assert.False(t, ok)

	vuezee, _ := Lookup(Vuezee)
	assert.True(t, vuezee.Repeatable())
	bonus, _ := Lookup(Bonus)
	assert.False(t, bonus.Manual())
}
