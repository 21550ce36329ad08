// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a gonum *mat.Dense with the same row-major layout.
// gonum forbids zero-length dimensions, so an empty m fails with
// ErrInvalidDimensions instead of panicking inside mat.NewDense.
func ToGonum(m *Dense) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}
	if m.r == 0 || m.c == 0 {
		return nil, matrixErrorf("ToGonum", fmt.Errorf("%dx%d: %w", m.r, m.c, ErrInvalidDimensions))
	}

	return mat.NewDense(m.r, m.c, m.Elements()), nil
}

// FromGonum copies any gonum matrix into a new *Dense, reading it in
// row-major order through At.
func FromGonum(a mat.Matrix) *Dense {
	rows, cols := a.Dims()

	return generate(rows, cols, func(i int) float64 { return a.At(i/cols, i%cols) })
}
