package card

import "math/rand/v2"

// Outcome is a card that passed simulation, with the attempts it took.
type Outcome struct {
	Grid     Grid
	Attempts int
}

// GenerateValid repeatedly generates candidates until one first completes a
// line exactly at p.WinAt, up to p.MaxAttempts tries.
//
// Precondition failures are returned immediately. If no attempt matches,
// the error is an *ExhaustedError carrying the target and attempt count.
func GenerateValid(rng *rand.Rand, p GenParams) (Outcome, error) {
	if err := p.Validate(); err != nil {
		return Outcome{}, err
	}

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		g, err := Generate(rng, p.WinAt, p.TotalItems)
		if err != nil {
			return Outcome{}, err
		}
		if call, ok := FirstBingo(g, p.TotalItems); ok && call == p.WinAt {
			return Outcome{Grid: g, Attempts: attempt}, nil
		}
	}

	attempts := p.MaxAttempts
	if attempts < 0 {
		attempts = 0
	}
	return Outcome{}, &ExhaustedError{
		WinAt:      p.WinAt,
		TotalItems: p.TotalItems,
		Attempts:   attempts,
	}
}
