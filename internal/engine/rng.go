package engine

import "math/rand"

// RNG is the uniform random source consumed by the engine.
// Float64 returns a value in [0, 1).
type RNG interface {
	Float64() float64
}

// NewRNG returns a seeded source. *rand.Rand satisfies RNG.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// between draws a value uniformly from [lo, hi).
func between(rng RNG, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// pick draws an index uniformly from [0, n).
func pick(rng RNG, n int) int {
	i := int(rng.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
