// SPDX-License-Identifier: MIT

package network

import "math/rand"

// defaultRNGSeed replaces seed 0 so that the zero value stays reproducible.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed 0 maps to defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id with the SplitMix64 finalizer.
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// pairUniform returns a uniform value in [0,1) for the unordered pair {i,j}
// under run key. The same pair yields the same value whichever worker or
// scan direction asks.
func pairUniform(key int64, i, j int) float64 {
	if i > j {
		i, j = j, i
	}
	stream := uint64(uint32(i))<<32 | uint64(uint32(j))

	return float64(uint64(deriveSeed(key, stream))>>11) / (1 << 53)
}
