// SPDX-License-Identifier: MIT

// rng.go centralizes deterministic random streams for both paths.
//
// Goals:
//   - Determinism: same seed ⇒ identical chains for a given path.
//   - Independence: the Compiled path keys one PCG stream per chain index, so
//     chunking and worker count never change the output.
//
// Concurrency:
//   - rand.Rand and rand.PCG are NOT goroutine-safe. Each worker owns one
//     PCG that is re-seeded per chain.
package chain

import "math/rand/v2"

// DefaultSeed is used when callers pass seed==0.
const DefaultSeed uint64 = 1

// streamInterpreted tags the single stream of the Interpreted path so it never
// coincides with chain 0 of the Compiled path.
const streamInterpreted = ^uint64(0)

// seedOrDefault applies the seed==0 policy.
func seedOrDefault(seed uint64) uint64 {
	if seed == 0 {
		return DefaultSeed
	}
	return seed
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64 finalizer. Small input changes give well spread
// outputs, so consecutive stream ids are decorrelated.
//
// Complexity: O(1).
func DeriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// seedStream re-seeds src for the given stream of parent.
func seedStream(src *rand.PCG, parent, stream uint64) {
	src.Seed(parent, DeriveSeed(parent, stream))
}

// newStream returns a fresh generator for the given stream of parent.
func newStream(parent, stream uint64) (*rand.Rand, *rand.PCG) {
	src := &rand.PCG{}
	seedStream(src, parent, stream)
	return rand.New(src), src
}
