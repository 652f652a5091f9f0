// Package scorecard holds the fixed category catalog and the per-game
// ledger that scores dice against it.
package scorecard

// ID identifies a scoring category.
type ID string

const (
	Aces   ID = "aces"
	Twos   ID = "twos"
	Threes ID = "threes"
	Fours  ID = "fours"
	Fives  ID = "fives"
	Sixes  ID = "sixes"
	Bonus  ID = "bonus"

	ThreeOfAKind  ID = "three_of_a_kind"
	FourOfAKind   ID = "four_of_a_kind"
	FullHouse     ID = "full_house"
	SmallStraight ID = "small_straight"
	LargeStraight ID = "large_straight"
	Vuezee        ID = "vuezee"
	Chance        ID = "chance"
)

// Fixed point values.
const (
	BonusThreshold      = 63
	BonusPoints         = 35
	FullHousePoints     = 25
	SmallStraightPoints = 30
	LargeStraightPoints = 40
	VuezeePoints        = 50
	VuezeeRepeatPoints  = 100
)

// Section is the half of the card a category belongs to.
type Section int

const (
	Upper Section = iota
	Lower
)

// String returns the section name used in snapshots and logs.
func (s Section) String() string {
	switch s {
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	default:
		return "unknown"
	}
}

// Rule selects the scoring computation for a category. The computation
// itself lives in Evaluate; the catalog only names it.
type Rule int

const (
	RuleFace Rule = iota
	RuleUpperBonus
	RuleOfAKind
	RuleFullHouse
	RuleSmallStraight
	RuleLargeStraight
	RuleFiveOfAKind
	RuleChance
)

// String returns the rule name.
func (r Rule) String() string {
	switch r {
	case RuleFace:
		return "face"
	case RuleUpperBonus:
		return "upper_bonus"
	case RuleOfAKind:
		return "of_a_kind"
	case RuleFullHouse:
		return "full_house"
	case RuleSmallStraight:
		return "small_straight"
	case RuleLargeStraight:
		return "large_straight"
	case RuleFiveOfAKind:
		return "five_of_a_kind"
	case RuleChance:
		return "chance"
	default:
		return "unknown"
	}
}

// Category is an immutable catalog entry.
type Category struct {
	ID      ID
	Label   string
	HowTo   string
	Section Section
	Rule    Rule
	// Face is the counted face for RuleFace and the minimum matching dice
	// for RuleOfAKind. Unused otherwise.
	Face int
}

// Repeatable reports whether the category may be scored again after it has
// been filled.
func (c Category) Repeatable() bool {
	return c.Rule == RuleFiveOfAKind
}

// Manual reports whether the player can choose the category. The upper
// bonus is only ever awarded automatically.
func (c Category) Manual() bool {
	return c.Rule != RuleUpperBonus
}

var catalog = [...]Category{
	{ID: Aces, Label: "Aces", HowTo: "Count and Score Only Aces", Section: Upper, Rule: RuleFace, Face: 1},
	{ID: Twos, Label: "Twos", HowTo: "Count and Score Only Twos", Section: Upper, Rule: RuleFace, Face: 2},
	{ID: Threes, Label: "Threes", HowTo: "Count and Score Only Threes", Section: Upper, Rule: RuleFace, Face: 3},
	{ID: Fours, Label: "Fours", HowTo: "Count and Score Only Fours", Section: Upper, Rule: RuleFace, Face: 4},
	{ID: Fives, Label: "Fives", HowTo: "Count and Score Only Fives", Section: Upper, Rule: RuleFace, Face: 5},
	{ID: Sixes, Label: "Sixes", HowTo: "Count and Score Only Sixes", Section: Upper, Rule: RuleFace, Face: 6},
	{ID: Bonus, Label: "Bonus", HowTo: "If Aces thru Sixes Summed >= 63 (35)", Section: Upper, Rule: RuleUpperBonus},

	{ID: ThreeOfAKind, Label: "3 of a Kind", HowTo: "Add Total of All Dice", Section: Lower, Rule: RuleOfAKind, Face: 3},
	{ID: FourOfAKind, Label: "4 of a Kind", HowTo: "Add Total of All Dice", Section: Lower, Rule: RuleOfAKind, Face: 4},
	{ID: FullHouse, Label: "Full House", HowTo: "One Triple and One Double (25)", Section: Lower, Rule: RuleFullHouse},
	{ID: SmallStraight, Label: "Small Straight", HowTo: "Sequence of 4 (30)", Section: Lower, Rule: RuleSmallStraight},
	{ID: LargeStraight, Label: "Large Straight", HowTo: "Sequence of 5 (40)", Section: Lower, Rule: RuleLargeStraight},
	{ID: Vuezee, Label: "Vuezee", HowTo: "5 of a Kind (50). Bonus for additionals (100)", Section: Lower, Rule: RuleFiveOfAKind},
	{ID: Chance, Label: "Chance", HowTo: "Add All 5 Dice", Section: Lower, Rule: RuleChance},
}

// Size is the number of categories on a card.
const Size = len(catalog)

// Catalog returns the categories in display order.
func Catalog() []Category {
	out := make([]Category, Size)
	copy(out, catalog[:])
	return out
}

// Lookup returns the catalog entry for id.
func Lookup(id ID) (Category, bool) {
	i := indexOf(id)
	if i < 0 {
		return Category{}, false
	}
	return catalog[i], true
}

// SectionCategories returns the categories of one section in display order.
func SectionCategories(s Section) []Category {
	var out []Category
	for _, c := range catalog {
		if c.Section == s {
			out = append(out, c)
		}
	}
	return out
}

func indexOf(id ID) int {
	for i, c := range catalog {
		if c.ID == id {
			return i
		}
	}
	return -1
}
