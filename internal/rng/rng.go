package rng

import "math/rand"

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Source is the random source shared by the deck, the bot policy and the bet sizer.
// A *rand.Rand satisfies it, which keeps whole hands reproducible from a seed
type Source interface {
	Generator

	// Float64 returns a number in [0.0, 1.0)
	Float64() float64

	// NormFloat64 returns a normally distributed number with mean 0 and standard deviation 1
	NormFloat64() float64
}

// New returns a Source seeded with seed
// A seed of 0 returns a crypto-backed source that cannot be replayed
func New(seed int64) Source {
	if seed == 0 {
		return Crypto{}
	}

	return rand.New(rand.NewSource(seed)) // nolint:gosec
}
