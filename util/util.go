package util

import "math/rand"

// RNG struct encapsulates the random number generator and seed.
//
// Clustering initialization is the only randomized step in this module;
// the seed is part of the configuration surface, never hidden global
// state.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 { return r.seed }

// Perm returns a random permutation of [0, n).
func (r *RNG) Perm(n int) []int { return r.rand.Perm(n) }

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int { return r.rand.Intn(n) }
