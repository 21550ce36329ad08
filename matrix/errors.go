// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// an operation tag) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Operations wrap these sentinels with their tag
// via matrixErrorf ("Mul: matrix: dimension mismatch"); callers still match
// them with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape (invalid dims / non-square) -> dimension mismatch -> index.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative,
	// or that an empty matrix was handed to an API that needs at least one element.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrDimensionMismatch indicates incompatible dimensions: element count vs
	// rows*cols at construction, Add with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't
	// (Transpose, Determinant, Inverse and the cofactor family).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrOutOfRange indicates that a linear, row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrUnknownTransposition is returned for a Transposition value outside the
	// four declared modes.
	ErrUnknownTransposition = errors.New("matrix: unknown transposition mode")

	// ErrBadTolerance indicates a negative, NaN or infinite comparison tolerance.
	ErrBadTolerance = errors.New("matrix: invalid tolerance")
)
