// SPDX-License-Identifier: MIT

package multiply

import "github.com/katalvlaran/mmbench/matrix"

// naive computes C = A·B with the textbook i→j→k loop order.
//
// Implementation:
//   - For each output cell (i,j), accumulate Σ_k A[i,k]·B[k,j] in a scalar and
//     store it once. The B access walks a column (stride m), which is exactly
//     the cache behavior the Blocked strategy improves on.
//
// Determinism:
//   - Fixed loop order; the summation order for every cell is k = 0..p-1.
//
// Complexity:
//   - Time Θ(n·p·m), Space O(n·m) for the result.
func naive(a, b *matrix.Dense) (*matrix.Dense, error) {
	n, p := a.Shape()
	m := b.Cols()
	ad, bd := a.RawData(), b.RawData()
	out := make([]float64, n*m)

	var (
		i, j, k int
		sum     float64
		rowA    []float64
	)
	for i = 0; i < n; i++ {
		rowA = ad[i*p : (i+1)*p]
		for j = 0; j < m; j++ {
			sum = 0
			for k = 0; k < p; k++ {
				sum += rowA[k] * bd[k*m+j]
			}
			out[i*m+j] = sum
		}
	}

	return matrix.NewDenseFrom(n, m, out)
}
