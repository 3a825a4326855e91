// Package randutil builds the random sources used for shuffling. Every
// shuffle in the module goes through a *rand.Rand built here so a single
// int64 seed reproduces a game or an analysis run.
package randutil

import (
	crand "crypto/rand"
	"encoding/binary"
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewSeed returns a fresh seed from crypto/rand, falling back to the clock
// if the system source is unavailable.
func NewSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// Seeds derives n independent seeds from rng, one per worker.
func Seeds(rng *rand.Rand, n int) []int64 {
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = rng.Int64()
	}
	return seeds
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
