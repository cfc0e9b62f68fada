// Package rng provides the randomness source shared by every question
// generator. A Rand is seedable so any generated question set can be
// replayed from its seed.
package rng

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// Rand is a seedable pseudo-random source.
//
// A Rand is not safe for concurrent use. Each request owns its own Rand.
type Rand struct {
	src  *rand.ChaCha8
	r    *rand.Rand
	seed uint64
}

// New returns a Rand seeded with seed. Two Rands built from the same seed
// produce identical sequences.
func New(seed uint64) *Rand {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	src := rand.NewChaCha8(key)
	return &Rand{src: src, r: rand.New(src), seed: seed}
}

// NewUnseeded returns a Rand seeded from the runtime's global source.
func NewUnseeded() *Rand {
	return New(rand.Uint64())
}

// Seed returns the seed this Rand was built from.
func (r *Rand) Seed() uint64 {
	return r.seed
}

// Int returns a uniform integer in [min, max].
// Panics if min > max.
func (r *Rand) Int(min, max int) int {
	if min > max {
		panic(fmt.Sprintf("rng: Int called with min %d > max %d", min, max))
	}
	return min + r.r.IntN(max-min+1)
}

// Intn returns a uniform integer in [0, n). Panics if n <= 0.
func (r *Rand) Intn(n int) int {
	return r.r.IntN(n)
}

// Float64 returns a uniform float in [0.0, 1.0).
func (r *Rand) Float64() float64 {
	return r.r.Float64()
}

// Bool returns true with probability one half.
func (r *Rand) Bool() bool {
	return r.r.IntN(2) == 1
}

// Sign returns -1 or 1 with equal probability.
func (r *Rand) Sign() int {
	if r.Bool() {
		return 1
	}
	return -1
}

// NonZero returns a uniform integer in [min, max] excluding zero.
// Panics if the range contains only zero.
func (r *Rand) NonZero(min, max int) int {
	if min == 0 && max == 0 {
		panic("rng: NonZero called with empty range")
	}
	for {
		if n := r.Int(min, max); n != 0 {
			return n
		}
	}
}

// Digit returns a digit in 0-9. When weights holds exactly ten entries the
// draw is bent towards them; otherwise it is uniform.
func (r *Rand) Digit(weights []float64) int {
	if len(weights) != 10 {
		return r.Int(0, 9)
	}
	digits := make([]Weighted[int], 10)
	for d := range digits {
		digits[d] = Weighted[int]{Item: d, Weight: weights[d]}
	}
	return PickWeighted(r, digits)
}

// Read fills p with random bytes. It lets a Rand feed APIs that take an
// io.Reader, such as UUID generation.
func (r *Rand) Read(p []byte) (int, error) {
	return r.src.Read(p)
}

// Weighted pairs an item with its relative weight.
type Weighted[T any] struct {
	Item   T
	Weight float64
}

// Pick returns a uniform choice from items. Panics if items is empty.
func Pick[T any](r *Rand, items []T) T {
	if len(items) == 0 {
		panic("rng: Pick called with no items")
	}
	return items[r.Intn(len(items))]
}

// PickWeighted returns an item with probability proportional to its weight.
// Weights need not sum to one. Negative weights count as zero. When the total
// weight is zero the last item is returned. Panics if items is empty.
func PickWeighted[T any](r *Rand, items []Weighted[T]) T {
	if len(items) == 0 {
		panic("rng: PickWeighted called with no items")
	}
	total := 0.0
	for _, it := range items {
		if it.Weight > 0 {
			total += it.Weight
		}
	}
	if total <= 0 {
		return items[len(items)-1].Item
	}
	target := r.Float64() * total
	for _, it := range items {
		if it.Weight <= 0 {
			continue
		}
		target -= it.Weight
		if target < 0 {
			return it.Item
		}
	}
	return items[len(items)-1].Item
}

// Shuffle reorders items in place using Fisher-Yates.
func Shuffle[T any](r *Rand, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Sample returns k distinct items chosen uniformly from items, in random
// order. Panics if k > len(items).
func Sample[T any](r *Rand, items []T, k int) []T {
	if k > len(items) {
		panic(fmt.Sprintf("rng: Sample of %d from %d items", k, len(items)))
	}
	pool := make([]T, len(items))
	copy(pool, items)
	Shuffle(r, pool)
	return pool[:k]
}
