package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
// An RNG is not safe for concurrent use; give every goroutine its own.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Bernoulli reports true with probability p. It always consumes exactly one
// uniform draw, so p >= 1 is always true and p <= 0 always false.
func (r *RNG) Bernoulli(p float64) bool {
	return r.r.Float64() < p
}

// DeriveSeed mixes a base seed with a stream index so that parallel workers
// started from one base seed draw uncorrelated sequences. It is a splitmix64
// finalizer over base + (index+1) * golden gamma.
func DeriveSeed(base int64, index int) int64 {
	z := uint64(base) + uint64(index+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31
	return int64(z)
}
