// Package random provides the shuffling and sampling primitives the
// question generator and session assembly are built on. All operations
// are driven by an injected source so callers can seed them for
// reproducible output.
package random

import (
	"errors"
	"math/rand/v2"
	"time"
)

// ErrEmptyPool is returned when an element is requested from an empty pool.
var ErrEmptyPool = errors.New("random: empty pool")

// Sampler wraps a randomness source with unbiased sampling operations.
type Sampler struct {
	rng *rand.Rand
}

// New creates a Sampler backed by the given source. A nil source gets
// a fresh time-seeded generator.
func New(src rand.Source) *Sampler {
	if src == nil {
		src = rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64())
	}
	return &Sampler{rng: rand.New(src)}
}

// NewSeeded creates a Sampler with a fixed seed. Intended for tests.
func NewSeeded(seed uint64) *Sampler {
	return New(rand.NewPCG(seed, 0))
}

// Shuffle returns a new slice with the same elements in uniformly
// random order, using a Fisher-Yates walk from the last index down.
// The input is never modified.
func Shuffle[T any](s *Sampler, in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	for i := len(out) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Sample returns min(k, len(in)) distinct elements in random order,
// drawn without replacement. k <= 0 yields an empty slice.
func Sample[T any](s *Sampler, in []T, k int) []T {
	if k <= 0 {
		return []T{}
	}
	shuffled := Shuffle(s, in)
	if k > len(shuffled) {
		k = len(shuffled)
	}
	return shuffled[:k]
}

// PickOne returns a uniformly chosen element of in.
func PickOne[T any](s *Sampler, in []T) (T, error) {
	var zero T
	if len(in) == 0 {
		return zero, ErrEmptyPool
	}
	return in[s.rng.IntN(len(in))], nil
}

// Chance returns true with probability p (clamped to [0,1]).
func (s *Sampler) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.rng.Float64() < p
}
