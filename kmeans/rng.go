// Package kmeans - RNG policy.
//
// Randomness here flows through gonum's sampling primitives, which
// consume golang.org/x/exp/rand sources; the same seed policy as the
// rest of the library applies (seed==0 ⇒ fixed default stream), and
// each restart derives an independent substream so restarts stay
// decorrelated under one seed.
package kmeans

import exprand "golang.org/x/exp/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *exprand.Rand for the given seed
// and restart stream.
//
// Complexity: O(1).
func rngFromSeed(seed int64, stream uint64) *exprand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return exprand.New(exprand.NewSource(uint64(deriveSeed(s, stream))))
}

// deriveSeed mixes a parent seed and a stream identifier into a new
// 64-bit seed with a SplitMix64-style finalizer (Vigna 2014), so
// per-restart streams are independent.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
