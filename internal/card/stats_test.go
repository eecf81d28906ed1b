package card_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/bingo/internal/card"
)

func TestMeasureAttempts(t *testing.T) {
	stats, err := card.MeasureAttempts(card.NewRNG(11), card.DefaultGenParams(), 40)
	if err != nil {
		t.Fatalf("MeasureAttempts() failed: %v", err)
	}

	if stats.Trials != 40 {
		t.Errorf("expected 40 trials, got %d", stats.Trials)
	}
	if stats.Successes+stats.Exhausted != stats.Trials {
		t.Errorf("successes %d + exhausted %d != trials %d", stats.Successes, stats.Exhausted, stats.Trials)
	}
	if stats.Successes == 0 {
		t.Fatal("expected at least one success for default parameters")
	}
	if stats.Min < 1 || stats.Max < stats.Min {
		t.Errorf("unexpected min/max: %d/%d", stats.Min, stats.Max)
	}
	if stats.Mean < float64(stats.Min) || stats.Mean > float64(stats.Max) {
		t.Errorf("mean %.2f outside [%d, %d]", stats.Mean, stats.Min, stats.Max)
	}

	sum := 0
	prev := 0
	for _, k := range stats.Buckets() {
		if k <= prev {
			t.Errorf("buckets not ascending: %d after %d", k, prev)
		}
		prev = k
		sum += stats.Histogram[k]
	}
	if sum != stats.Successes {
		t.Errorf("histogram sums to %d, expected %d", sum, stats.Successes)
	}
}

func TestMeasureAttemptsImpossible(t *testing.T) {
	p := card.GenParams{WinAt: 30, TotalItems: 30, MaxAttempts: 5}

	stats, err := card.MeasureAttempts(card.NewRNG(3), p, 10)
	if err != nil {
		t.Fatalf("MeasureAttempts() failed: %v", err)
	}
	if stats.Exhausted != 10 || stats.Successes != 0 {
		t.Errorf("expected all trials exhausted, got %+v", stats)
	}
	if stats.SuccessRate() != 0 {
		t.Errorf("expected success rate 0, got %f", stats.SuccessRate())
	}
}

func TestMeasureAttemptsPrecondition(t *testing.T) {
	p := card.GenParams{WinAt: 3, TotalItems: 30, MaxAttempts: 5}

	if _, err := card.MeasureAttempts(card.NewRNG(3), p, 10); !errors.Is(err, card.ErrPrecondition) {
		t.Errorf("expected precondition error, got %v", err)
	}
}
