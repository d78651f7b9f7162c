// Package rng provides the injectable random source used for shuffling and
// for every uniform choice a simulated player makes.
package rng

import (
	"math/rand"
	"sort"
)

// Source provides random numbers
type Source interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
	// Shuffle permutes n elements using swap
	Shuffle(n int, swap func(i, j int))
}

// Seeded is a reproducible Source
type Seeded struct {
	seed int64
	rng  *rand.Rand
}

// NewSeeded returns a Source that replays the same sequence for the same seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// Seed returns the seed the source was built with
func (s *Seeded) Seed() int64 {
	return s.seed
}

func (s *Seeded) Intn(n int) int {
	return s.rng.Intn(n)
}

func (s *Seeded) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}

// Shuffle permutes s in place
func Shuffle[T any](src Source, s []T) {
	src.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}

// ChooseOne returns a uniformly chosen index into s.
// It panics if s is empty.
func ChooseOne[T any](src Source, s []T) int {
	if len(s) == 0 {
		panic("rng: ChooseOne on empty slice")
	}
	return src.Intn(len(s))
}

// ChooseK returns k distinct indices into s, in ascending order.
// If k exceeds len(s) every index is returned.
func ChooseK[T any](src Source, s []T, k int) []int {
	n := len(s)
	if k > n {
		k = n
	}
	if k < 0 {
		k = 0
	}

	// partial Fisher-Yates over the index space
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + src.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	chosen := idx[:k]
	sort.Ints(chosen)
	return chosen
}

// UniformInt returns a number in [lo, hi]
func UniformInt(src Source, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + src.Intn(hi-lo+1)
}
