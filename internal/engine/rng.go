package engine

import (
	"hash/fnv"
	"math/rand"
)

// RNG is the single source of randomness for one match. It is seeded
// from the match identifier, so two matches constructed with the same
// id and advanced through the same draw sequence produce bit-identical
// outcomes. Nothing else in the engine may consult wall clock or the
// global rand source.
type RNG struct {
	rnd *rand.Rand
}

// NewRNG builds a deterministic source from a string seed. The seed is
// FNV-hashed down to the generator's 64-bit seed; collisions across
// matches are acceptable.
func NewRNG(seed string) *RNG {
	return &RNG{rnd: rand.New(rand.NewSource(int64(hash64(seed))))}
}

func hash64(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

// Next returns the next draw in [0, 1).
func (r *RNG) Next() float64 { return r.rnd.Float64() }

// Pick returns a uniform index in [0, n). n must be positive.
func (r *RNG) Pick(n int) int { return r.rnd.Intn(n) }

// Chance draws once and reports whether the draw landed under p.
func (r *RNG) Chance(p float64) bool { return r.rnd.Float64() < p }
