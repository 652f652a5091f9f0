package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	t.Parallel()

	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.IntN(6), b.IntN(6))
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	t.Parallel()

	a := New(1)
	b := New(2)
	same := 0
	for i := 0; i < 64; i++ {
		if a.Uint64() == b.Uint64() {
			same++
		}
	}
	assert.Less(t, same, 64)
}

func TestFromSeed(t *testing.T) {
	t.Parallel()

	seeded := FromSeed(7)
	expected := New(7)
	assert.Equal(t, expected.Uint64(), seeded.Uint64())

	// A zero seed falls back to entropy; it just has to produce values.
	random := FromSeed(0)
	v := random.IntN(6)
	assert.GreaterOrEqual(t, v, 0)
	assert.Less(t, v, 6)
}
