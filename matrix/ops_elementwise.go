// SPDX-License-Identifier: MIT
// Package matrix: element-wise comparisons used to check that different
// multiplication strategies agree.
//
// Policy:
//   - Inputs must be non-nil and of identical shape.
//   - Tolerances must be finite; negative tolerances are normalized to |tol|.

package matrix

import "math"

const (
	opAllClose   = "AllClose"
	opMaxRelDiff = "MaxRelDiff"
)

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := AsDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := AsDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	for idx := range da.data {
		if math.Abs(da.data[idx]-db.data[idx]) > atol+rtol*math.Abs(db.data[idx]) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}

// MaxRelDiff returns the normwise relative difference
//
//	max_ij |a_ij - b_ij| / max_ij |b_ij|
//
// treating b as the trusted value. When b is identically zero the absolute
// maximum difference is returned instead.
// Time: O(r*c). Space: O(1).
func MaxRelDiff(a, b Matrix) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf(opMaxRelDiff, err)
	}
	da, err := AsDense(a)
	if err != nil {
		return 0, matrixErrorf(opMaxRelDiff, err)
	}
	db, err := AsDense(b)
	if err != nil {
		return 0, matrixErrorf(opMaxRelDiff, err)
	}

	var maxDiff, maxRef float64
	for idx := range da.data {
		maxDiff = math.Max(maxDiff, math.Abs(da.data[idx]-db.data[idx]))
		maxRef = math.Max(maxRef, math.Abs(db.data[idx]))
	}
	if maxRef == 0 {
		return maxDiff, nil
	}

	return maxDiff / maxRef, nil
}
