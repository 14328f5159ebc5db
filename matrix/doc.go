// Package matrix provides the dense storage every multiplication strategy
// operates on.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and a
//     RawData escape hatch for hot kernels.
//   - Block / SetBlock for copying quadrants in and out of a matrix.
//   - Add / Sub element-wise combinations with fail-fast shape validation.
//   - AllClose / MaxRelDiff to compare results of different strategies.
//
// Operands are never mutated by the functions of this package; every result
// is a freshly allocated Dense.
package matrix
