// Package util provides test and benchmark helpers for generating random
// vector contents deterministically.
package util

import "math/rand"

// RNG struct encapsulates the random number generator and seed.
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

// Seed returns the seed the RNG was created with, for reproducing failures.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a uniform int in [0, n).
func (r *RNG) Intn(n int) int {
	return r.rand.Intn(n)
}

// Elements generates n random floating-point elements in [0, 1).
func Elements[T ~float32 | ~float64](r *RNG, n int) []T {
	elems := make([]T, n)
	for i := range elems {
		elems[i] = T(r.rand.Float64())
	}
	return elems
}

// IntElements generates n random integer elements in [0, bound).
func IntElements[T ~int | ~int32 | ~int64](r *RNG, n int, bound int64) []T {
	elems := make([]T, n)
	for i := range elems {
		elems[i] = T(r.rand.Int63n(bound))
	}
	return elems
}
