package core

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand/v2"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewRNGFromString derives a PCG state from the seed text so that equal
// strings always produce equal streams.
func NewRNGFromString(seed string) *RNG {
	sum := sha256.Sum256([]byte(seed))
	hi := binary.LittleEndian.Uint64(sum[0:8])
	lo := binary.LittleEndian.Uint64(sum[8:16])
	return &RNG{r: rand.New(rand.NewPCG(hi, lo))}
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Chance reports whether a uniform draw falls below p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// IntN returns a uniform int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// FillSparse writes 1 into each cell with probability 1/(spread+1) and 0
// otherwise.
func FillSparse(r *rand.Rand, buf []uint8, spread int) {
	if spread < 0 {
		spread = 0
	}
	for i := range buf {
		if r.IntN(spread+1) == 0 {
			buf[i] = 1
			continue
		}
		buf[i] = 0
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
