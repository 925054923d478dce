// Package randutil derives reproducible random sources from a single seed.
package randutil

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(splitmix(u), splitmix(u+goldenRatio64)))
}

// Stream returns the generator for one of several independent streams
// sharing a base seed, so each simulation worker gets its own sequence that
// does not depend on how many other workers exist.
func Stream(seed int64, stream int) *rand.Rand {
	return New(int64(splitmix(uint64(seed) + uint64(stream+1)*goldenRatio64)))
}

// splitmix is the SplitMix64 finaliser.
func splitmix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
