package statistics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func result(upper, lower int, bonus bool) GameResult {
	return GameResult{Score: upper + lower, UpperTotal: upper, LowerTotal: lower, Bonus: bonus}
}

func TestStatistics_Empty(t *testing.T) {
	stats := &Statistics{}

	assert.Zero(t, stats.Mean())
	assert.Zero(t, stats.Variance())
	assert.Zero(t, stats.StdDev())
	assert.Zero(t, stats.StdError())
	assert.Zero(t, stats.Median())
	assert.Zero(t, stats.Percentile(0.5))
	assert.Zero(t, stats.BonusRate())
	assert.Error(t, stats.Validate(), "no games")
}

func TestStatistics_SingleValue(t *testing.T) {
	stats := &Statistics{}
	stats.Add(GameResult{Score: 230, UpperTotal: 98, LowerTotal: 132, Seed: 12345, Bonus: true, Vuezees: 1})

	assert.Equal(t, 1, stats.Games)
	assert.Equal(t, 230.0, stats.Mean())
	assert.Zero(t, stats.Variance())
	assert.Equal(t, 230.0, stats.Median())
	assert.Equal(t, 230, stats.Best)
	assert.Equal(t, 230, stats.Worst)
	assert.Equal(t, 1.0, stats.BonusRate())
	assert.Equal(t, 1, stats.Vuezees)
	assert.NoError(t, stats.Validate())
}

func TestStatistics_MultipleValues(t *testing.T) {
	stats := &Statistics{}
	for _, r := range []GameResult{
		result(60, 90, false),
		result(100, 150, true),
		result(70, 130, false),
		result(50, 50, false),
	} {
		stats.Add(r)
	}

	assert.Equal(t, 4, stats.Games)
	assert.Equal(t, 175.0, stats.Mean())
	assert.Equal(t, 250, stats.Best)
	assert.Equal(t, 100, stats.Worst)
	assert.Equal(t, 0.25, stats.BonusRate())
	assert.Equal(t, 175.0, stats.Median(), "median of 100, 150, 200, 250")

	// Sample variance: deviations -75, -25, 25, 75.
	expectedVariance := (75.0*75 + 25*25 + 25*25 + 75*75) / 3
	assert.InDelta(t, expectedVariance, stats.Variance(), 1e-9)
	assert.InDelta(t, math.Sqrt(expectedVariance), stats.StdDev(), 1e-9)
	assert.InDelta(t, stats.StdDev()/2, stats.StdError(), 1e-9)

	low, high := stats.ConfidenceInterval95()
	assert.InDelta(t, 175-1.96*stats.StdError(), low, 1e-9)
	assert.InDelta(t, 175+1.96*stats.StdError(), high, 1e-9)
	require.NoError(t, stats.Validate())
}

func TestStatistics_Percentile(t *testing.T) {
	stats := &Statistics{}
	for _, score := range []int{100, 200, 300, 400, 500} {
		stats.Add(result(0, score, false))
	}

	tests := []struct {
		p    float64
		want float64
	}{
		{0, 100},
		{0.25, 200},
		{0.5, 300},
		{0.9, 460},
		{1, 500},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, stats.Percentile(tt.p), 1e-9, "p=%v", tt.p)
	}
}

func TestStatistics_Validate(t *testing.T) {
	t.Run("ledger mismatch", func(t *testing.T) {
		stats := &Statistics{}
		stats.Add(GameResult{Score: 200, UpperTotal: 80, LowerTotal: 100})

		err := stats.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ledger mismatch")
	})

	t.Run("values out of sync", func(t *testing.T) {
		stats := &Statistics{}
		stats.Add(result(60, 100, false))
		stats.Values = nil

		err := stats.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "values array length")
	})
}
