// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numproc/matrix"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	zeros := func(r, c int) *matrix.Dense {
		return MustNew(t, r, c, make([]float64, r*c)...)
	}

	tests := []struct {
		name    string
		a, b    *matrix.Dense
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(2, 2), matrix.ErrNilMatrix},
		{"second nil", zeros(2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", zeros(2, 3), zeros(2, 3), nil},
		{"row mismatch", zeros(2, 3), zeros(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(2, 3), zeros(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateSquare(MustIdentity(t, 3)))
	require.NoError(t, matrix.ValidateSquare(MustNew(t, 0, 0)))
	require.ErrorIs(t, matrix.ValidateSquare(MustNew(t, 1, 2, 1, 2)), matrix.ErrNonSquare)

	_, err := matrix.IdentityLike(MustNew(t, 2, 1, 1, 2))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	id, err := matrix.IdentityLike(MustNew(t, 2, 2, 5, 6, 7, 8))
	require.NoError(t, err)
	require.True(t, matrix.Equal(MustIdentity(t, 2), id))
}

// TestValidateMulCompatible covers the inner-dimension rule.
func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	a := MustNew(t, 2, 3, 1, 2, 3, 4, 5, 6)
	require.NoError(t, matrix.ValidateMulCompatible(a, MustNew(t, 3, 1, 1, 2, 3)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, a), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, a), matrix.ErrNilMatrix)
}
