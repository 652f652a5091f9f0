package scorecard

import "github.com/lox/vuezee/internal/dice"

// Entry is the mutable per-game state of one category.
type Entry struct {
	Score  int
	Scored bool
}

// Outcome describes an applied scoring.
type Outcome struct {
	Category ID
	// Points is what this scoring added to the category, which for a
	// repeated five of a kind is the repeat bonus rather than the total.
	Points int
	// Repeat is true when an already filled five of a kind was stacked.
	Repeat bool
	// BonusAwarded is true when this scoring triggered the upper bonus.
	BonusAwarded bool
}

// Card is the ledger for one game. The zero value is not usable; call
// NewCard.
type Card struct {
	entries    [Size]Entry
	upperTotal int
	lowerTotal int
	grandTotal int
}

// NewCard returns an empty card.
func NewCard() *Card {
	return &Card{}
}

// Reset clears every category and total.
func (c *Card) Reset() {
	*c = Card{}
}

// Entry returns the state of one category.
func (c *Card) Entry(id ID) (Entry, bool) {
	i := indexOf(id)
	if i < 0 {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Potential returns the points scoring id with v would add right now.
// ok is false when Score would reject the call.
func (c *Card) Potential(id ID, v dice.Values) (points int, ok bool) {
	i := indexOf(id)
	if i < 0 {
		return 0, false
	}
	cat := catalog[i]
	if !cat.Manual() {
		return 0, false
	}

	e := c.entries[i]
	if !e.Scored {
		return Evaluate(cat, v), true
	}
	if cat.Repeatable() && e.Score >= VuezeePoints && IsFiveOfAKind(v) {
		return VuezeeRepeatPoints, true
	}
	return 0, false
}

// Score applies v to category id. Unknown categories, the upper bonus,
// filled categories and non-qualifying repeats are ignored: the card is left
// unchanged and ok is false.
//
// A five of a kind scored with a qualifying roll may be scored again with
// another qualifying roll, adding VuezeeRepeatPoints each time. Scored with
// a non-qualifying roll it is locked at zero for the rest of the game.
func (c *Card) Score(id ID, v dice.Values) (out Outcome, ok bool) {
	points, ok := c.Potential(id, v)
	if !ok {
		return Outcome{}, false
	}

	i := indexOf(id)
	cat := catalog[i]
	e := &c.entries[i]

	out = Outcome{Category: id, Points: points, Repeat: e.Scored}
	e.Score += points
	e.Scored = true

	if cat.Section == Upper {
		out.BonusAwarded = c.applyBonus()
	}
	c.recompute()
	return out, true
}

// applyBonus awards the upper bonus the first time the upper categories,
// bonus excluded, reach BonusThreshold. Once every upper category is filled
// without reaching it, the bonus is closed at zero so the card can complete.
func (c *Card) applyBonus() bool {
	i := indexOf(Bonus)
	if c.entries[i].Scored {
		return false
	}
	if c.UpperSubtotal() >= BonusThreshold {
		c.entries[i] = Entry{Score: BonusPoints, Scored: true}
		return true
	}
	if c.upperFilled() {
		c.entries[i] = Entry{Scored: true}
	}
	return false
}

func (c *Card) upperFilled() bool {
	for i, cat := range catalog {
		if cat.Section == Upper && cat.Manual() && !c.entries[i].Scored {
			return false
		}
	}
	return true
}

func (c *Card) recompute() {
	c.upperTotal, c.lowerTotal = 0, 0
	for i, cat := range catalog {
		e := c.entries[i]
		if !e.Scored {
			continue
		}
		if cat.Section == Upper {
			c.upperTotal += e.Score
		} else {
			c.lowerTotal += e.Score
		}
	}
	c.grandTotal = c.upperTotal + c.lowerTotal
}

// UpperSubtotal is the sum of the scored upper categories without the bonus.
func (c *Card) UpperSubtotal() int {
	total := 0
	for i, cat := range catalog {
		if cat.Section == Upper && cat.Manual() && c.entries[i].Scored {
			total += c.entries[i].Score
		}
	}
	return total
}

// UpperTotal is the sum of the scored upper categories including the bonus.
func (c *Card) UpperTotal() int { return c.upperTotal }

// LowerTotal is the sum of the scored lower categories.
func (c *Card) LowerTotal() int { return c.lowerTotal }

// GrandTotal is UpperTotal plus LowerTotal.
func (c *Card) GrandTotal() int { return c.grandTotal }

// Complete reports whether every category, bonus included, is scored.
func (c *Card) Complete() bool {
	for _, e := range c.entries {
		if !e.Scored {
			return false
		}
	}
	return true
}

// Open returns the categories a player can still fill, in display order.
// The upper bonus is never listed and a stackable five of a kind is not
// considered open.
func (c *Card) Open() []ID {
	var out []ID
	for i, cat := range catalog {
		if cat.Manual() && !c.entries[i].Scored {
			out = append(out, cat.ID)
		}
	}
	return out
}
