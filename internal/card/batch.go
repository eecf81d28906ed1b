package card

import (
	"fmt"

	"github.com/google/uuid"
)

// serialNamespace scopes card serials to this generator.
var serialNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("bingo.card"))

// Card is a validated grid with the bookkeeping needed to print it.
type Card struct {
	Number   int    // 1-based position in its batch
	Serial   string // Stable identifier derived from seed and number
	WinAt    int
	Grid     Grid
	Attempts int
}

// Serial returns the identifier printed on card number n of the batch
// generated from seed.
func Serial(seed uint64, n int) string {
	return uuid.NewSHA1(serialNamespace, []byte(fmt.Sprintf("%d/%d", seed, n))).String()
}

// GenerateBatch generates n validated cards. Card i draws from its own
// stream derived from seed, so the same seed always yields the same batch.
// The first failure aborts the batch.
func GenerateBatch(seed uint64, p GenParams, n int) ([]Card, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	cards := make([]Card, 0, n)
	for i := 1; i <= n; i++ {
		out, err := GenerateValid(StreamRNG(seed, i), p)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
		cards = append(cards, Card{
			Number:   i,
			Serial:   Serial(seed, i),
			WinAt:    p.WinAt,
			Grid:     out.Grid,
			Attempts: out.Attempts,
		})
	}
	return cards, nil
}
