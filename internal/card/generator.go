package card

import (
	"fmt"
	"math/rand/v2"
)

// MinTotalItems is the smallest universe that can fill a card.
const MinTotalItems = Size * Size

// GenParams configures card generation.
type GenParams struct {
	WinAt       int // Call number at which the card must first bingo
	TotalItems  int // Items in the universe, called 1..TotalItems
	MaxAttempts int // Retry limit for validation
}

// DefaultGenParams returns the defaults used by the watch-along games.
func DefaultGenParams() GenParams {
	return GenParams{
		WinAt:       20,
		TotalItems:  30,
		MaxAttempts: 100,
	}
}

// Validate checks that a card can be built for p at all.
func (p GenParams) Validate() error {
	if err := checkTarget(p.WinAt, p.TotalItems); err != nil {
		return err
	}
	if len(FeasiblePositions(p.WinAt)) == 0 {
		return lowPoolError(p.WinAt)
	}
	return nil
}

func checkTarget(winAt, totalItems int) error {
	if totalItems < MinTotalItems {
		return &PreconditionError{
			Code:    CodeInvalidTotal,
			Message: fmt.Sprintf("total items %d < %d cells", totalItems, MinTotalItems),
		}
	}
	if winAt < 1 || winAt > totalItems {
		return &PreconditionError{
			Code:    CodeInvalidTarget,
			Message: fmt.Sprintf("win_at %d outside [1, %d]", winAt, totalItems),
		}
	}
	return nil
}

func lowPoolError(winAt int) error {
	return &PreconditionError{
		Code: CodeLowPool,
		Message: fmt.Sprintf("win_at %d leaves %d smaller items, need at least %d to fill a winning cell's lines",
			winAt, winAt-1, 2*(Size-1)),
	}
}

// FeasiblePositions returns the cells where winAt can be placed with enough
// smaller values left to fill every intersecting cell.
func FeasiblePositions(winAt int) []Position {
	var out []Position
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			p := P(r, c)
			if len(Intersecting(p)) <= winAt-1 {
				out = append(out, p)
			}
		}
	}
	return out
}

// Generate builds a candidate card with winAt at a random cell and only
// smaller values on every line through that cell. No line through winAt can
// complete before winAt is called. Lines that avoid it are not constrained;
// GenerateValid checks them by simulation.
func Generate(rng *rand.Rand, winAt, totalItems int) (Grid, error) {
	var g Grid
	if err := checkTarget(winAt, totalItems); err != nil {
		return g, err
	}
	candidates := FeasiblePositions(winAt)
	if len(candidates) == 0 {
		return g, lowPoolError(winAt)
	}

	win := candidates[rng.IntN(len(candidates))]
	g[win.Row][win.Col] = winAt

	low := shuffledRange(rng, 1, winAt-1)
	for _, p := range Intersecting(win) {
		g[p.Row][p.Col], low = low[len(low)-1], low[:len(low)-1]
	}

	rest := make([]int, 0, len(low)+totalItems-winAt)
	rest = append(rest, low...)
	for v := winAt + 1; v <= totalItems; v++ {
		rest = append(rest, v)
	}
	rng.Shuffle(len(rest), func(i, j int) {
		rest[i], rest[j] = rest[j], rest[i]
	})

	// Zero marks an empty cell; item orders start at 1.
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g[r][c] == 0 {
				g[r][c], rest = rest[len(rest)-1], rest[:len(rest)-1]
			}
		}
	}
	return g, nil
}

// shuffledRange returns lo..hi inclusive in random order.
func shuffledRange(rng *rand.Rand, lo, hi int) []int {
	if hi < lo {
		return nil
	}
	values := make([]int, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		values = append(values, v)
	}
	rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
	return values
}
