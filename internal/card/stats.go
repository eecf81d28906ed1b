package card

import (
	"errors"
	"math/rand/v2"
	"sort"
)

// AttemptStats summarizes how many attempts GenerateValid needed over a
// number of trials.
type AttemptStats struct {
	Trials    int
	Successes int
	Exhausted int
	Min       int // Fewest attempts among successes (0 if none)
	Max       int // Most attempts among successes
	Mean      float64
	Histogram map[int]int // Attempts -> number of successful trials
}

// SuccessRate returns the fraction of trials that produced a card.
func (s AttemptStats) SuccessRate() float64 {
	if s.Trials == 0 {
		return 0
	}
	return float64(s.Successes) / float64(s.Trials)
}

// Buckets returns the histogram keys in ascending order.
func (s AttemptStats) Buckets() []int {
	keys := make([]int, 0, len(s.Histogram))
	for k := range s.Histogram {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// MeasureAttempts runs GenerateValid trials times and records the attempt
// distribution. Precondition errors abort the measurement.
func MeasureAttempts(rng *rand.Rand, p GenParams, trials int) (AttemptStats, error) {
	stats := AttemptStats{Histogram: make(map[int]int)}
	if err := p.Validate(); err != nil {
		return stats, err
	}

	total := 0
	for i := 0; i < trials; i++ {
		stats.Trials++
		out, err := GenerateValid(rng, p)
		if errors.Is(err, ErrExhausted) {
			stats.Exhausted++
			continue
		}
		if err != nil {
			return stats, err
		}

		stats.Successes++
		stats.Histogram[out.Attempts]++
		total += out.Attempts
		if stats.Min == 0 || out.Attempts < stats.Min {
			stats.Min = out.Attempts
		}
		if out.Attempts > stats.Max {
			stats.Max = out.Attempts
		}
	}

	if stats.Successes > 0 {
		stats.Mean = float64(total) / float64(stats.Successes)
	}
	return stats, nil
}
