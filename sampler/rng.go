// Package sampler - RNG utilities shared by the stochastic backends.
//
// Goals:
//   - Determinism: same seed ⇒ identical sample sets across platforms.
//   - Independence: each read draws from its own derived stream, so the
//     result of read r does not depend on how many reads preceded it.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Derive one stream per read.
package sampler

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// deriveSeed mixes a parent seed and a stream identifier into a new seed
// with a SplitMix64-style finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// readRNG returns the stream for read number r under seed.
func readRNG(seed int64, r int) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(deriveSeed(seed, uint64(r))))
}
