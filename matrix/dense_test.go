// Package matrix_test contains unit tests for Dense construction and accessors.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numproc/matrix"
)

// TestNewElementCountMismatch ensures New rejects a buffer whose length is not rows*cols.
func TestNewElementCountMismatch(t *testing.T) {
	_, err := matrix.New(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.New(1, 3, []float64{1, 2, 3, 4})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestNewInvalidDimensions ensures negative shapes are rejected even when rows*cols matches.
func TestNewInvalidDimensions(t *testing.T) {
	_, err := matrix.New(-1, -1, []float64{7}) // (-1)*(-1) == 1 == len
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFunc(-2, 3, func(int) float64 { return 0 })
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.Identity(-1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewOversizedDimensions ensures shapes whose element count overflows int
// or exceeds MaxElements are rejected before any allocation.
func TestNewOversizedDimensions(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"product wraps to zero", 1 << 32, 1 << 32},
		{"product wraps negative", 3037000500, 3037000500},
		{"one past cap", matrix.MaxElements + 1, 1},
		{"cap exceeded by columns", 2, matrix.MaxElements/2 + 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.New(tc.rows, tc.cols, nil)
			require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

			calls := 0
			_, err = matrix.NewFunc(tc.rows, tc.cols, func(int) float64 { calls++; return 0 })
			require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
			require.Zero(t, calls)

			require.ErrorIs(t, matrix.ValidateDims(tc.rows, tc.cols), matrix.ErrInvalidDimensions)
		})
	}

	_, err := matrix.Identity(1 << 32)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	require.NoError(t, matrix.ValidateDims(matrix.MaxElements, 1))
	require.NoError(t, matrix.ValidateDims(0, 1<<62))
}

// TestNewFuncErrLargeShapeFailsEarly verifies a large shape whose generator fails
// on the first element returns that error.
func TestNewFuncErrLargeShapeFailsEarly(t *testing.T) {
	_, err := matrix.NewFuncErr(4096, 4096, func(int) (float64, error) { return 0, matrix.ErrOutOfRange })
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestNewCopiesBuffer verifies that later writes to the caller's slice are not observed.
func TestNewCopiesBuffer(t *testing.T) {
	buf := []float64{1, 2, 3, 4}
	m := MustNew(t, 2, 2, buf...)
	buf[0] = 99

	require.Equal(t, 1.0, MustElement(t, m, 0))

	out := m.Elements() // copy out, mutate, re-read
	out[1] = -5
	require.Equal(t, 2.0, MustElement(t, m, 1))
}

// TestEmptyShapes checks that 0×N, N×0 and 0×0 are legal.
func TestEmptyShapes(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{{0, 0}, {0, 3}, {4, 0}} {
		m, err := matrix.New(tc.rows, tc.cols, nil)
		require.NoError(t, err)
		require.Equal(t, 0, m.Len())
		r, c := m.Shape()
		require.Equal(t, tc.rows, r)
		require.Equal(t, tc.cols, c)
	}
}

// TestNewFuncOrder checks that the generator is called once per linear index, in order.
func TestNewFuncOrder(t *testing.T) {
	var seen []int
	m, err := matrix.NewFunc(2, 3, func(i int) float64 {
		seen = append(seen, i)
		return float64(i * i)
	})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, seen)
	require.Equal(t, MustNew(t, 2, 3, 0, 1, 4, 9, 16, 25).Elements(), m.Elements())
}

// TestNewFuncErrStops verifies the first generator error aborts construction.
func TestNewFuncErrStops(t *testing.T) {
	calls := 0
	_, err := matrix.NewFuncErr(2, 2, func(i int) (float64, error) {
		calls++
		if i == 2 {
			return 0, matrix.ErrOutOfRange
		}
		return 1, nil
	})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Equal(t, 3, calls)
}

// TestElementAndAt covers linear and coordinate access, including bounds.
func TestElementAndAt(t *testing.T) {
	m := MustNew(t, 2, 3, 1, 2, 3, 4, 5, 6)

	for i := 0; i < m.Len(); i++ {
		require.Equal(t, float64(i+1), MustElement(t, m, i))
		v, err := m.At(i/3, i%3)
		require.NoError(t, err)
		require.Equal(t, float64(i+1), v)
	}

	for _, i := range []int{-1, 6, 100} {
		_, err := m.Element(i)
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "Element(%d)", i)
	}
	for _, rc := range [][2]int{{-1, 0}, {2, 0}, {0, 3}, {0, -1}} {
		_, err := m.At(rc[0], rc[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "At(%d,%d)", rc[0], rc[1])
	}
}

// TestIdentity checks ones exactly on linear indices 0, n+1, 2(n+1), ...
func TestIdentity(t *testing.T) {
	for n := 0; n <= 5; n++ {
		id := MustIdentity(t, n)
		require.True(t, id.IsSquare())
		for i := 0; i < n*n; i++ {
			want := 0.0
			if i%(n+1) == 0 {
				want = 1.0
			}
			require.Equal(t, want, MustElement(t, id, i), "n=%d i=%d", n, i)
		}
	}
}

// TestEqual covers shape, value and nil handling.
func TestEqual(t *testing.T) {
	a := MustNew(t, 1, 2, 1, 2)
	require.True(t, matrix.Equal(a, MustNew(t, 1, 2, 1, 2)))
	require.False(t, matrix.Equal(a, MustNew(t, 2, 1, 1, 2)))
	require.False(t, matrix.Equal(a, MustNew(t, 1, 2, 1, 3)))
	require.False(t, matrix.Equal(a, nil))
	require.True(t, matrix.Equal(nil, nil))
}
