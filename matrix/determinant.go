// SPDX-License-Identifier: MIT
// Package matrix: determinant, minors, cofactors and the adjugate inverse.
//
// Purpose:
//   - Determinant by Laplace (cofactor) expansion along the first row.
//   - Inverse by the adjugate method: inv(A) = adj(A) · 1/det(A).
//
// Determinism & Policy:
//   - Singularity is an exact test (det == 0.0); no epsilon is applied, so a
//     nearly singular matrix still yields a (possibly huge) inverse.
//   - Singular input is a normal result (ok == false), never an error.
//
// Complexity:
//   - Determinant is O(n!) time and O(n^2) space per recursion level (depth n).
//     Inverse evaluates n^2 minors, i.e. O(n^2 · (n-1)!). Intended for small
//     matrices typed in by a person; larger inputs should use an LU-based
//     routine such as gonum's mat.Dense.Inverse (see ToGonum).

package matrix

import "fmt"

// ZeroDeterminant is the exact value that marks a matrix as singular.
const ZeroDeterminant = 0.0

// Determinant returns det(m) for a square m.
// Implementation:
//   - Stage 1: ValidateSquare(m).
//   - Stage 2: size 0 → 1 (empty product), size 1 → m[0],
//     size 2 → m[0]*m[3] - m[1]*m[2], otherwise Σ_col m[col]·Cofactor(col).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func Determinant(m *Dense) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return m.det(), nil
}

// det is the unchecked recursive kernel; m must be square.
func (m *Dense) det() float64 {
	switch m.r {
	case 0:
		return 1.0
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}

	sum := ZeroSum
	for col := 0; col < m.c; col++ { // expand along row 0, increasing col
		sum += m.data[col] * m.cofactor(col)
	}

	return sum
}

// submatrix returns the (n-1)×(n-1) matrix obtained by deleting the row
// and column that contain linear index idx.
func (m *Dense) submatrix(idx int) *Dense {
	n := m.r
	row, col := idx/n, idx%n
	size := n - 1

	return generate(size, size, func(i int) float64 {
		r, c := i/size, i%size
		if r >= row {
			r++ // skip the deleted row
		}
		if c >= col {
			c++ // skip the deleted column
		}
		return m.data[r*n+c]
	})
}

// minor is det(submatrix(idx)).
func (m *Dense) minor(idx int) float64 {
	return m.submatrix(idx).det()
}

// cofactor is sign(idx)·minor(idx), sign = +1 iff row+col is even.
func (m *Dense) cofactor(idx int) float64 {
	n := m.r
	if (idx/n+idx%n)%2 == 0 {
		return m.minor(idx)
	}

	return -m.minor(idx)
}

// Minor returns the determinant of the submatrix of m formed by deleting
// the row and column containing linear index idx.
// Errors: ErrNilMatrix, ErrNonSquare, ErrOutOfRange.
func Minor(m *Dense, idx int) (float64, error) {
	if err := validateCell(m, idx); err != nil {
		return 0, matrixErrorf(opMinor, err)
	}

	return m.minor(idx), nil
}

// Cofactor returns the signed minor at linear index idx.
// Errors: ErrNilMatrix, ErrNonSquare, ErrOutOfRange.
func Cofactor(m *Dense, idx int) (float64, error) {
	if err := validateCell(m, idx); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}

	return m.cofactor(idx), nil
}

// validateCell is ValidateSquare followed by a linear-index bounds check.
func validateCell(m *Dense, idx int) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}

	return validateLinearIndex(m, idx)
}

// CofactorMatrix returns C with C[i] = Cofactor(m, i) for every linear index.
// Errors: ErrNilMatrix, ErrNonSquare.
func CofactorMatrix(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}

	return generate(m.r, m.c, m.cofactor), nil
}

// Adjugate returns the transpose of the cofactor matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
func Adjugate(m *Dense) (*Dense, error) {
	c, err := CofactorMatrix(m)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return T(c)
}

// Inverse returns the inverse of the square matrix m by the adjugate method.
// MAIN DESCRIPTION:
//   - inv(A) = adj(A) · (1/det(A)).
//
// Implementation:
//   - Stage 1: det := Determinant(m) (propagates ErrNonSquare).
//   - Stage 2: det == 0.0 exactly → (nil, false, nil).
//   - Stage 3: Scale(Adjugate(m), 1/det).
//
// Returns:
//   - inv, true, nil  : m is invertible.
//   - nil, false, nil : m is singular; there is no inverse and no error.
//   - nil, false, err : m is nil or not square.
//
// Complexity:
//   - Time O(n^2 · (n-1)!), Space O(n^2).
func Inverse(m *Dense) (*Dense, bool, error) {
	det, err := Determinant(m)
	if err != nil {
		return nil, false, matrixErrorf(opInverse, err)
	}
	if det == ZeroDeterminant {
		return nil, false, nil
	}

	adj, err := Adjugate(m)
	if err != nil {
		return nil, false, matrixErrorf(opInverse, err)
	}
	inv, err := Scale(adj, 1/det)
	if err != nil {
		return nil, false, matrixErrorf(opInverse, fmt.Errorf("scale by 1/%v: %w", det, err))
	}

	return inv, true, nil
}
