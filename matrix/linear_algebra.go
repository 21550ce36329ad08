// SPDX-License-Identifier: MIT
// Package matrix provides the elementary algebra over *Dense: element-wise
// addition, scalar scaling and matrix multiplication. All functions perform
// strict fail-fast validation and return wrapped sentinels on dimension
// mismatches. Operands are never mutated; every result is freshly allocated.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value of every accumulation (dot products, cofactor sums).
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opScale     = "Scale"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opDet       = "Determinant"
	opMinor     = "Minor"
	opCofactor  = "Cofactor"
	opAdjugate  = "Adjugate"
	opInverse   = "Inverse"
	opAllClose  = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B.
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: single flat loop out[i] = a[i] + b[i].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b *Dense) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return generate(a.r, a.c, func(i int) float64 { return a.data[i] + b.data[i] }), nil
}

// Scale returns k·A. NaN and ±Inf follow IEEE-754 propagation; the only
// failure is a nil operand.
// Complexity: O(r*c).
func Scale(a *Dense, k float64) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return generate(a.r, a.c, func(i int) float64 { return a.data[i] * k }), nil
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: ValidateMulCompatible (A.Cols == B.Rows), then ValidateDims
//     on the A.Rows×B.Cols result.
//   - Stage 2: for each output index i (row r = i / B.Cols, col c = i % B.Cols)
//     accumulate Σ_k A[r*A.Cols+k] * B[k*B.Cols+c] in increasing k.
//
// Behavior highlights:
//   - No zero-skipping: 0·Inf yields NaN exactly as the plain sum would.
//   - Summation order is fixed, so results are reproducible bit for bit.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrInvalidDimensions (result too large).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateDims(a.r, b.c); err != nil { // n×1 · 1×n can outgrow both operands
		return nil, matrixErrorf(opMul, err)
	}

	inner, bCols := a.c, b.c
	return generate(a.r, bCols, func(i int) float64 {
		rowA := (i / bCols) * inner // start of row r in A
		col := i % bCols
		sum := ZeroSum
		for k := 0; k < inner; k++ {
			sum += a.data[rowA+k] * b.data[k*bCols+col]
		}
		return sum
	}), nil
}

// AllClose checks element-wise |a-b| ≤ tol for identical shapes.
// Returns (true,nil) if every element satisfies the relation.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrBadTolerance.
func AllClose(a, b *Dense, tol float64) (bool, error) {
	if isNonFinite(tol) || tol < 0 {
		return false, matrixErrorf(opAllClose, fmt.Errorf("tolerance %v: %w", tol, ErrBadTolerance))
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for i := range a.data {
		if !(math.Abs(a.data[i]-b.data[i]) <= tol) { // NaN fails the comparison
			return false, nil
		}
	}

	return true, nil
}
