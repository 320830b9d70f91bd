// Package rng provides the single per-session random source shared by
// every resolver.
package rng

import (
	"math/rand"
	"time"
)

// counter wraps a rand.Source and counts raw draws, so a restored RNG lands
// on the same point in the stream even when Intn rejects and redraws.
type counter struct {
	src rand.Source
	n   int64
}

func (c *counter) Int63() int64 {
	c.n++
	return c.src.Int63()
}

func (c *counter) Seed(seed int64) {
	c.src.Seed(seed)
	c.n = 0
}

// RNG is a seeded generator whose position can be saved and restored.
type RNG struct {
	seed int64
	src  *counter
	rand *rand.Rand
}

// New creates an RNG from a seed. The same seed yields the same stream.
func New(seed int64) *RNG {
	c := &counter{src: rand.NewSource(seed)}
	return &RNG{seed: seed, src: c, rand: rand.New(c)}
}

// NewRandom seeds from the clock.
func NewRandom() *RNG {
	return New(time.Now().UnixNano())
}

// Restore recreates the RNG for seed and skips position raw draws.
func Restore(seed, position int64) *RNG {
	r := New(seed)
	for r.src.n < position {
		r.src.Int63()
	}
	return r
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 { return r.seed }

// Position returns the number of raw draws taken from the seed's stream.
func (r *RNG) Position() int64 { return r.src.n }

// Intn returns a uniform integer in [0, n).
func (r *RNG) Intn(n int) int {
	return r.rand.Intn(n)
}

// Range returns a uniform integer in [lo, hi]. If hi <= lo, lo is returned
// without consuming a draw.
func (r *RNG) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.rand.Intn(hi-lo+1)
}

// Float64 returns a uniform float in [0, 1).
func (r *RNG) Float64() float64 {
	return r.rand.Float64()
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.Float64() < p
}

// WeightedSelect returns an index chosen in proportion to weights, which
// must be non-empty and positive.
func (r *RNG) WeightedSelect(weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	roll := r.rand.Intn(total)
	for i, w := range weights {
		if roll < w {
			return i
		}
		roll -= w
	}
	return len(weights) - 1
}
