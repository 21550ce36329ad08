// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide intention-revealing aliases for the canonical kernels.
//   - Avoid any logic duplication — each facade delegates to the implementation.

package matrix

// ScalarMultiply returns k·A. Alias of Scale.
func ScalarMultiply(a *Dense, k float64) (*Dense, error) { return Scale(a, k) }

// MatrixMultiply returns A × B. Alias of Mul.
func MatrixMultiply(a, b *Dense) (*Dense, error) { return Mul(a, b) }

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return Identity(m.r)
}
