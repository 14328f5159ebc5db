// SPDX-License-Identifier: MIT

package schedule

import "math/rand"

// rngFromSeed returns the deterministic source used for shuffling. The seed
// is used verbatim, so every distinct seed (zero included) is its own stream.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// shuffleInPlace performs a Fisher–Yates shuffle from the last index down,
// drawing j uniformly from [0, i].
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace[T any](a []T, r *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
