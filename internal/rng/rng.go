// Package rng provides the random sources used to shuffle the deck
package rng

import (
	crand "crypto/rand"
	"math/big"
	"math/rand"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Crypto draws from crypto/rand. It is used for unseeded sessions.
type Crypto struct{}

// Intn returns a number in [0, n). It panics if n <= 0 or the system source fails.
func (Crypto) Intn(n int) int {
	b, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}

// NewSeeded returns a reproducible generator
// This is mostly useful for tests and for replaying a session.
func NewSeeded(seed int64) Generator {
	return rand.New(rand.NewSource(seed)) // nolint:gosec
}

// New returns a seeded generator when seed is non-zero, otherwise a crypto generator
func New(seed int64) Generator {
	if seed == 0 {
		return Crypto{}
	}

	return NewSeeded(seed)
}
