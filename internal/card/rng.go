package card

import (
	"math/rand/v2"
	"time"
)

// streamSalt separates the PCG stream selector from the seed.
const streamSalt = 0x9E3779B97F4A7C15

// NewRNG returns a deterministic generator for seed.
// A zero seed means "use the current time".
func NewRNG(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^streamSalt))
}

// StreamRNG returns the index-th independent stream derived from seed.
// Cards in a batch each get their own stream so they are uncorrelated and
// individually reproducible.
func StreamRNG(seed uint64, index int) *rand.Rand {
	return rand.New(rand.NewPCG(seed, streamSalt+uint64(index)))
}
