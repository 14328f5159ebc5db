// SPDX-License-Identifier: MIT

package multiply

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/katalvlaran/mmbench/matrix"
)

// reference computes C = A·B through BLAS dgemm (alpha=1, beta=0).
//
// The implementation registered with blas64 is used; by default that is the
// pure-Go gonum BLAS. A cgo-backed BLAS can be installed process-wide with
// blas64.Use before the benchmark starts.
//
// Complexity:
//   - Time Θ(n·p·m) with BLAS-level blocking, Space O(n·m).
func reference(a, b *matrix.Dense) (*matrix.Dense, error) {
	n, p := a.Shape()
	m := b.Cols()
	out := make([]float64, n*m)

	blas64.Gemm(blas.NoTrans, blas.NoTrans, 1,
		general(n, p, a.RawData()),
		general(p, m, b.RawData()),
		0,
		general(n, m, out),
	)

	return matrix.NewDenseFrom(n, m, out)
}

// general describes a row-major buffer as a blas64.General with a tight stride.
func general(rows, cols int, data []float64) blas64.General {
	return blas64.General{Rows: rows, Cols: cols, Stride: cols, Data: data}
}
