package utils

import (
	"math/rand/v2"
)

// Rand is the subset of *rand.Rand used for game logic
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int {
	return rand.IntN(n) //nolint:gosec // Game logic randomness, not security critical
}

// NewRand returns a seeded source, or the shared global source when seed is 0
func NewRand(seed uint64) Rand {
	if seed == 0 {
		return globalRand{}
	}
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)) //nolint:gosec // Game logic randomness, not security critical
}

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(r Rand, min, max int) int {
	if min >= max {
		return min
	}
	if r == nil {
		r = globalRand{}
	}
	return r.IntN(max-min+1) + min
}

// FloorDiv divides non-negative a by b, returning 0 when b is not positive
func FloorDiv(a, b int) int {
	if b <= 0 || a <= 0 {
		return 0
	}
	return a / b
}
