// File: utils/random.go
package utils

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"math/rand"
	"time"
)

// ErrNoRandomSource is returned when a simulation is built without a random source.
var ErrNoRandomSource = errors.New("no random source")

// NewRandomSource returns a deterministic source for a non-zero seed. Seed 0
// draws a seed from crypto/rand, falling back to the clock.
func NewRandomSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DeriveSeed()
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed returns a non-zero seed.
func DeriveSeed() int64 {
	var buf [8]byte
	seed := int64(0)
	if _, err := crand.Read(buf[:]); err == nil {
		seed = int64(binary.LittleEndian.Uint64(buf[:]) >> 1)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return seed
}

// RandomBetween returns a uniform value in [lo, hi).
func RandomBetween(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
