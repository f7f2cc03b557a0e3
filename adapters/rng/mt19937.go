// Package rng provides the deterministic random number generator consumed by
// bag generation. The generator is a Mersenne Twister with value-copy
// snapshot semantics: a snapshot is a plain struct copy, so the sampling hot
// loop can run against a local copy and write the advanced state back once.
package rng

import (
	"math"

	"gonum.org/v1/gonum/mathext/prng"

	"innerbag/ports"
)

// MT19937 implements ports.RNG around gonum's MT19937 source.
// Not safe for concurrent use; give each concurrent generation its own
// instance with an independently derived seed.
type MT19937 struct {
	src prng.MT19937
}

var _ ports.RNG = (*MT19937)(nil)

// NewMT19937 returns a generator seeded with seed. Two generators built from
// the same seed produce identical streams.
func NewMT19937(seed uint64) *MT19937 {
	r := &MT19937{src: *prng.NewMT19937()}
	r.src.Seed(seed)
	return r
}

// UintN returns an unbiased integer in [0, n). Values at or above the
// largest multiple of n are redrawn so every residue is equally likely.
func (r *MT19937) UintN(n uint64) uint64 {
	if n == 0 {
		panic("rng: UintN called with n == 0")
	}
	if n&(n-1) == 0 {
		return r.src.Uint64() & (n - 1)
	}
	limit := math.MaxUint64 - math.MaxUint64%n
	v := r.src.Uint64()
	for v >= limit {
		v = r.src.Uint64()
	}
	return v % n
}

// Snapshot returns an independent copy of the full generator state.
func (r *MT19937) Snapshot() ports.RNG {
	cp := r.src
	return &MT19937{src: cp}
}

// Restore adopts the state of a snapshot previously taken from this
// generator. snapshot must be an *MT19937.
func (r *MT19937) Restore(snapshot ports.RNG) {
	r.src = snapshot.(*MT19937).src
}
