package card_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/bingo/internal/card"
)

func TestGenerateCardInvariants(t *testing.T) {
	targets := []struct {
		winAt int
		total int
	}{
		{winAt: 20, total: 30},
		{winAt: 9, total: 30},
		{winAt: 13, total: 25},
		{winAt: 17, total: 40},
		{winAt: 30, total: 30},
		{winAt: 45, total: 90},
	}

	for _, tc := range targets {
		for seed := uint64(1); seed <= 50; seed++ {
			g, err := card.Generate(card.NewRNG(seed), tc.winAt, tc.total)
			if err != nil {
				t.Fatalf("Generate(%d, %d) seed %d failed: %v", tc.winAt, tc.total, seed, err)
			}

			if err := g.Validate(tc.total); err != nil {
				t.Fatalf("Generate(%d, %d) seed %d produced invalid grid: %v\n%s", tc.winAt, tc.total, seed, err, g)
			}

			pos, ok := g.Find(tc.winAt)
			if !ok {
				t.Fatalf("Generate(%d, %d) seed %d: win value missing\n%s", tc.winAt, tc.total, seed, g)
			}

			for _, p := range card.Intersecting(pos) {
				if g.At(p) >= tc.winAt {
					t.Errorf("seed %d: cell %s = %d shares a line with %d at %s",
						seed, p, g.At(p), tc.winAt, pos)
				}
			}

			// Every line through the win cell completes exactly at winAt,
			// so the first bingo can never be later.
			if call := card.Simulate(g, tc.total); call > tc.winAt {
				t.Errorf("seed %d: first bingo at %d, after win_at %d", seed, call, tc.winAt)
			}
		}
	}
}

func TestGenerateDeterminism(t *testing.T) {
	g1, err1 := card.Generate(card.NewRNG(99999), 20, 30)
	g2, err2 := card.Generate(card.NewRNG(99999), 20, 30)
	if err1 != nil || err2 != nil {
		t.Fatalf("generation failed: %v, %v", err1, err2)
	}
	if diff := cmp.Diff(g1, g2); diff != "" {
		t.Errorf("same seed produced different grids (-first +second):\n%s", diff)
	}
}

func TestGenerateLowTargetAvoidsDiagonals(t *testing.T) {
	// With 8 smaller values only cells off both diagonals can hold win_at.
	for seed := uint64(1); seed <= 100; seed++ {
		g, err := card.Generate(card.NewRNG(seed), 9, 30)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		pos, _ := g.Find(9)
		if pos.OnMainDiagonal() || pos.OnAntiDiagonal() {
			t.Errorf("seed %d: win_at 9 placed on a diagonal at %s", seed, pos)
		}
	}
}

func TestFeasiblePositions(t *testing.T) {
	tests := []struct {
		winAt    int
		expected int
	}{
		{winAt: 1, expected: 0},
		{winAt: 8, expected: 0},
		{winAt: 9, expected: 16},
		{winAt: 12, expected: 16},
		{winAt: 13, expected: 24},
		{winAt: 16, expected: 24},
		{winAt: 17, expected: 25},
		{winAt: 30, expected: 25},
	}

	for _, tc := range tests {
		if got := len(card.FeasiblePositions(tc.winAt)); got != tc.expected {
			t.Errorf("FeasiblePositions(%d) = %d cells, expected %d", tc.winAt, got, tc.expected)
		}
	}
}

func TestGeneratePreconditions(t *testing.T) {
	tests := []struct {
		name  string
		winAt int
		total int
		code  string
	}{
		{name: "universe too small", winAt: 10, total: 24, code: card.CodeInvalidTotal},
		{name: "win_at zero", winAt: 0, total: 30, code: card.CodeInvalidTarget},
		{name: "win_at above total", winAt: 31, total: 30, code: card.CodeInvalidTarget},
		{name: "too few smaller values", winAt: 8, total: 30, code: card.CodeLowPool},
		{name: "win_at one", winAt: 1, total: 30, code: card.CodeLowPool},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := card.Generate(card.NewRNG(1), tc.winAt, tc.total)
			if !errors.Is(err, card.ErrPrecondition) {
				t.Fatalf("expected precondition error, got %v", err)
			}
			var pe *card.PreconditionError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *PreconditionError, got %T", err)
			}
			if pe.Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, pe.Code)
			}
		})
	}
}
