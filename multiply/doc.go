// SPDX-License-Identifier: MIT

// Package multiply implements the dense matrix multiplication strategies that
// the benchmark compares.
//
// What & Why:
//
//	Four strategies compute the same product C = A·B for A (n×p) and B (p×m):
//
//	  • Naive     — i→j→k triple loop with a scalar accumulator per cell.
//	  • Blocked   — ii→kk→jj tiling with an inner i→k→j sweep (cache blocking).
//	  • Strassen  — 7-product recursive decomposition down to a leaf threshold.
//	  • Reference — gonum BLAS dgemm, the throughput baseline.
//
//	All strategies are exposed behind a single Engine keyed by an Algorithm tag,
//	so timing and logging code is written once for every variant.
//
// Guarantees:
//
//   - Operands are never mutated; every call allocates a fresh result.
//   - All strategies agree within floating-point accumulation-order tolerance.
//   - Shape errors surface as ErrDimensionMismatch before any allocation.
//
// Strassen size policy:
//
//	The recursion halves the order at every level, so the order must stay even
//	down to the leaf threshold. With PadNone (default) a violating size fails
//	fast with ErrInvalidSize; with PadPowerOfTwo operands are zero-embedded into
//	the next power-of-two square and the result is cropped back.
//
// Complexity:
//
//	Naive/Blocked: Θ(n·p·m). Strassen: Θ(n^log2(7)) above the leaf.
package multiply
