package util

import (
	"math"
	"math/rand"
)

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

// Float64InRange returns a uniform value in [min, max).
func (r *RNG) Float64InRange(min, max float64) float64 {
	return min + r.rand.Float64()*(max-min)
}

// UnitAxis returns a uniformly distributed unit direction by rejection
// sampling from the cube.
func (r *RNG) UnitAxis() (x, y, z float64) {
	for {
		x = r.Float64InRange(-1, 1)
		y = r.Float64InRange(-1, 1)
		z = r.Float64InRange(-1, 1)
		n := x*x + y*y + z*z
		if n > 1e-3 && n <= 1 {
			s := 1 / math.Sqrt(n)
			return x * s, y * s, z * s
		}
	}
}
