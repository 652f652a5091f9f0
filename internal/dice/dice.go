// Package dice models the five six-sided dice of a round and the roll
// operation over them.
package dice

import (
	"fmt"
	"strconv"

	"github.com/lox/vuezee/internal/randutil"
)

// Count is the number of dice in a set.
const Count = 5

// Face is the value showing on a die. The zero value means the die has not
// been rolled since the set was last reset.
type Face int

const (
	Blank Face = iota
	One
	Two
	Three
	Four
	Five
	Six
)

// Valid reports whether f is a rolled face in [1,6].
func (f Face) Valid() bool {
	return f >= One && f <= Six
}

// String returns the face as a digit, or "-" for an unrolled die.
func (f Face) String() string {
	if !f.Valid() {
		return "-"
	}
	return strconv.Itoa(int(f))
}

// Die is a single die. ID is stable for the lifetime of a Set (1..Count).
type Die struct {
	ID    int  `json:"dice_id"`
	Value Face `json:"value"`
	Held  bool `json:"selected"`
}

// Set is an ordered collection of exactly Count dice.
type Set struct {
	dice [Count]Die
}

// NewSet returns a set of unrolled, unheld dice with IDs 1..Count.
func NewSet() *Set {
	s := &Set{}
	s.Reset()
	return s
}

// Reset clears every die back to Blank and releases all holds.
func (s *Set) Reset() {
	for i := range s.dice {
		s.dice[i] = Die{ID: i + 1}
	}
}

// Dice returns a copy of the dice in order.
func (s *Set) Dice() []Die {
	out := make([]Die, Count)
	copy(out, s.dice[:])
	return out
}

// Die returns the die with the given ID.
func (s *Set) Die(id int) (Die, bool) {
	d := s.lookup(id)
	if d == nil {
		return Die{}, false
	}
	return *d, true
}

// RollAll rolls every die that is not held. Held dice keep their value.
func (s *Set) RollAll(src randutil.Source) {
	for i := range s.dice {
		if s.dice[i].Held {
			continue
		}
		s.rollDie(&s.dice[i], src)
	}
}

// RollOne rolls a single die regardless of whether it is held.
// It reports false for an unknown ID.
func (s *Set) RollOne(id int, src randutil.Source) bool {
	d := s.lookup(id)
	if d == nil {
		return false
	}
	s.rollDie(d, src)
	return true
}

// ToggleHeld flips the held flag of a die and reports whether a die with
// that ID exists. Whether holding is allowed at all is decided by the turn.
func (s *Set) ToggleHeld(id int) bool {
	d := s.lookup(id)
	if d == nil {
		return false
	}
	d.Held = !d.Held
	return true
}

// HeldCount returns the number of held dice.
func (s *Set) HeldCount() int {
	n := 0
	for _, d := range s.dice {
		if d.Held {
			n++
		}
	}
	return n
}

// Values returns the face values of all dice. ok is false while any die is
// still Blank.
func (s *Set) Values() (v Values, ok bool) {
	for i, d := range s.dice {
		if !d.Value.Valid() {
			return Values{}, false
		}
		v[i] = int(d.Value)
	}
	return v, true
}

func (s *Set) rollDie(d *Die, src randutil.Source) {
	d.Value = Face(src.IntN(6) + 1)
}

func (s *Set) lookup(id int) *Die {
	if id < 1 || id > Count {
		return nil
	}
	return &s.dice[id-1]
}

// Values holds the five rolled faces of a set.
type Values [Count]int

// MustValues builds Values from exactly Count faces in [1,6]. Any other input
// is a programming error and panics.
func MustValues(faces ...int) Values {
	if len(faces) != Count {
		panic(fmt.Sprintf("dice: expected %d values, got %d", Count, len(faces)))
	}
	var v Values
	for i, f := range faces {
		if !Face(f).Valid() {
			panic(fmt.Sprintf("dice: value %d at index %d not in range 1-6", f, i))
		}
		v[i] = f
	}
	return v
}

// Counts returns how many dice show each face, indexed by face (index 0 unused).
func (v Values) Counts() [7]int {
	var c [7]int
	for _, f := range v {
		c[f]++
	}
	return c
}

// Sum returns the total of all faces.
func (v Values) Sum() int {
	total := 0
	for _, f := range v {
		total += f
	}
	return total
}
