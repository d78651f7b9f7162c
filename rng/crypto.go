package rng

import (
	"crypto/rand"
	"math/big"
)

// Crypto wraps the crypto/rand library. It cannot be replayed, so games
// built without an explicit source fall back to it.
type Crypto struct{}

// Intn returns a random number from 0 <= x < n
func (c Crypto) Intn(n int) int {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}

// Shuffle is a Fisher-Yates shuffle driven by Intn
func (c Crypto) Shuffle(n int, swap func(i, j int)) {
	for j := n - 1; j > 0; j-- {
		swap(c.Intn(j+1), j)
	}
}

// Seed returns a random non-zero seed suitable for NewSeeded
func Seed() int64 {
	b, err := rand.Int(rand.Reader, big.NewInt(1<<62))
	if err != nil {
		panic(err)
	}

	return b.Int64() + 1
}
