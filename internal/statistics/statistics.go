// Package statistics aggregates the results of simulated games.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// GameResult is the outcome of a single game
type GameResult struct {
	Score      int   // Grand total
	UpperTotal int   // Upper section including the bonus
	LowerTotal int   // Lower section
	Seed       int64 // RNG seed for this game (for replay), 0 if random
	Bonus      bool  // Upper bonus awarded
	Vuezees    int   // Five of a kinds scored, stacked ones included
}

// Statistics tracks simulation statistics
type Statistics struct {
	Games  int
	Sum    float64
	Sum2   float64   // Sum of squares for variance calculation
	Values []float64 // Store all values for median/percentile calculation

	Best  int
	Worst int

	// Section ledger: UpperSum + LowerSum must equal Sum
	UpperSum float64
	LowerSum float64

	Bonuses int // Games with the upper bonus
	Vuezees int // Total five of a kinds scored
}

// Mean returns the arithmetic mean score per game
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.Sum / float64(s.Games)
}

// Variance returns the sample variance of all scores
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of all scores
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Add incorporates a game result into the statistics
func (s *Statistics) Add(result GameResult) {
	score := float64(result.Score)
	if s.Games == 0 || result.Score > s.Best {
		s.Best = result.Score
	}
	if s.Games == 0 || result.Score < s.Worst {
		s.Worst = result.Score
	}

	s.Games++
	s.Sum += score
	s.Sum2 += score * score
	s.Values = append(s.Values, score)

	s.UpperSum += float64(result.UpperTotal)
	s.LowerSum += float64(result.LowerTotal)

	if result.Bonus {
		s.Bonuses++
	}
	s.Vuezees += result.Vuezees
}

// BonusRate returns the fraction of games that earned the upper bonus
func (s *Statistics) BonusRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Bonuses) / float64(s.Games)
}

// Median returns the median score
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the score at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

func (s *Statistics) sorted() []float64 {
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)
	return sorted
}

// IsLedgerBalanced checks that the section totals add up to the scores
func (s *Statistics) IsLedgerBalanced() bool {
	return math.Abs(s.Sum-s.UpperSum-s.LowerSum) <= 1e-6
}

// Validate performs consistency checks on the collected data
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: Sum=%.0f, UpperSum=%.0f, LowerSum=%.0f",
			s.Sum, s.UpperSum, s.LowerSum)
	}

	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}

	if len(s.Values) != s.Games {
		return fmt.Errorf("values array length (%d) does not match games count (%d)",
			len(s.Values), s.Games)
	}

	if s.Bonuses > s.Games {
		return fmt.Errorf("bonuses (%d) exceed games (%d)", s.Bonuses, s.Games)
	}

	return nil
}
