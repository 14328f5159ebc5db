// SPDX-License-Identifier: MIT

package store

import "math/rand"

// Stream identifiers of the two operands.
const (
	streamA uint64 = 0
	streamB uint64 = 1
)

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with the SplitMix64 finalizer, so neighbouring streams of one seed are
// decorrelated.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// newStream returns the deterministic generator of one operand.
// The *rand.Rand is not goroutine-safe; every goroutine gets its own.
func newStream(seed int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(seed, stream)))
}
