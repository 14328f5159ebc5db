// SPDX-License-Identifier: MIT

package multiply

import "github.com/katalvlaran/mmbench/matrix"

// blocked computes C = A·B by tiling the iteration space into bs×bs blocks.
//
// Implementation:
//   - Block loops ii (rows of C) → kk (reduction) → jj (columns of C).
//   - Inside a block: i → k → j, broadcasting A[i,k] across a contiguous run of
//     B's row k and C's row i, so the inner loop streams both buffers.
//   - Partial blocks at the edges clamp their upper bound to min(start+bs, dim);
//     nothing is padded and no index leaves the operands.
//
// Determinism:
//   - Each C[i,j] accumulates its k terms in ascending k, grouped by block.
//     The mathematical result equals the naive product; the rounding can differ
//     only by accumulation order.
//
// Complexity:
//   - Time Θ(n·p·m), Space O(n·m) for the result.
func blocked(a, b *matrix.Dense, bs int) (*matrix.Dense, error) {
	n, p := a.Shape()
	m := b.Cols()
	ad, bd := a.RawData(), b.RawData()
	out := make([]float64, n*m)

	var (
		ii, kk, jj       int
		iMax, kMax, jMax int
		i, k, j          int
		aik              float64
		rowB, rowC       []float64
	)
	for ii = 0; ii < n; ii += bs {
		iMax = min(ii+bs, n)
		for kk = 0; kk < p; kk += bs {
			kMax = min(kk+bs, p)
			for jj = 0; jj < m; jj += bs {
				jMax = min(jj+bs, m)
				for i = ii; i < iMax; i++ {
					rowC = out[i*m : (i+1)*m]
					for k = kk; k < kMax; k++ {
						aik = ad[i*p+k]
						rowB = bd[k*m : (k+1)*m]
						for j = jj; j < jMax; j++ {
							rowC[j] += aik * rowB[j]
						}
					}
				}
			}
		}
	}

	return matrix.NewDenseFrom(n, m, out)
}
