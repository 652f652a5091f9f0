package scorecard

import (
	"encoding/json"
	"fmt"
)

// SnapshotEntry is the serialized form of one category.
type SnapshotEntry struct {
	ID     ID     `json:"id"`
	Label  string `json:"label,omitempty"`
	Score  int    `json:"score"`
	Scored bool   `json:"scored"`
}

// Snapshot is the serialized form of a card.
type Snapshot struct {
	UpperSection []SnapshotEntry `json:"upper_section"`
	LowerSection []SnapshotEntry `json:"lower_section"`
	UpperTotal   int             `json:"upper_total"`
	LowerTotal   int             `json:"lower_total"`
	GrandTotal   int             `json:"grand_total"`
}

// Snapshot returns the card's current state.
func (c *Card) Snapshot() Snapshot {
	s := Snapshot{
		UpperTotal: c.upperTotal,
		LowerTotal: c.lowerTotal,
		GrandTotal: c.grandTotal,
	}
	for i, cat := range catalog {
		e := SnapshotEntry{
			ID:     cat.ID,
			Label:  cat.Label,
			Score:  c.entries[i].Score,
			Scored: c.entries[i].Scored,
		}
		if cat.Section == Upper {
			s.UpperSection = append(s.UpperSection, e)
		} else {
			s.LowerSection = append(s.LowerSection, e)
		}
	}
	return s
}

// Restore replaces the card's state with s. Categories missing from s are
// left unscored, labels and stored totals are ignored and totals are
// recomputed. The saved upper bonus is discarded and derived again from the
// restored upper section, exactly as scoring would have left it. Scores no
// roll can produce for the bonus or the five of a kind are rejected. On
// error the card is unchanged.
func (c *Card) Restore(s Snapshot) error {
	var entries [Size]Entry
	seen := make(map[ID]bool, Size)

	restore := func(section Section, list []SnapshotEntry) error {
		for _, se := range list {
			i := indexOf(se.ID)
			if i < 0 {
				return fmt.Errorf("unknown category %q", se.ID)
			}
			if catalog[i].Section != section {
				return fmt.Errorf("category %q is not in the %s section", se.ID, section)
			}
			if seen[se.ID] {
				return fmt.Errorf("duplicate category %q", se.ID)
			}
			if se.Score < 0 {
				return fmt.Errorf("category %q has negative score %d", se.ID, se.Score)
			}
			if !se.Scored && se.Score != 0 {
				return fmt.Errorf("category %q has score %d but is not scored", se.ID, se.Score)
			}
			if !reachable(catalog[i], se.Score) {
				return fmt.Errorf("category %q cannot score %d", se.ID, se.Score)
			}
			seen[se.ID] = true
			entries[i] = Entry{Score: se.Score, Scored: se.Scored}
		}
		return nil
	}

	if err := restore(Upper, s.UpperSection); err != nil {
		return err
	}
	if err := restore(Lower, s.LowerSection); err != nil {
		return err
	}

	entries[indexOf(Bonus)] = Entry{}

	c.entries = entries
	c.applyBonus()
	c.recompute()
	return nil
}

// reachable reports whether score is a value the rules can leave in c.
func reachable(c Category, score int) bool {
	switch c.Rule {
	case RuleUpperBonus:
		return score == 0 || score == BonusPoints
	case RuleFiveOfAKind:
		return score == 0 || (score >= VuezeePoints && (score-VuezeePoints)%VuezeeRepeatPoints == 0)
	default:
		return true
	}
}

// MarshalJSON encodes the card as a Snapshot.
func (c *Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Snapshot())
}

// UnmarshalJSON decodes a Snapshot into the card.
func (c *Card) UnmarshalJSON(data []byte) error {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decode scorecard: %w", err)
	}
	return c.Restore(s)
}
