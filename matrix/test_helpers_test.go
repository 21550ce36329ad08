// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernel tests.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numproc/matrix"
)

// eps is the tolerance for comparisons after division (Inverse, gonum oracle).
const eps = 1e-9

// MustNew builds an r×c *Dense from a row-major slice or fails the test.
func MustNew(t testing.TB, r, c int, vals ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.New(r, c, vals)
	require.NoError(t, err, "New(%d,%d)", r, c)

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.Identity(n)
	require.NoError(t, err, "Identity(%d)", n)

	return m
}

// MustElement reads linear index i or fails the test.
func MustElement(t testing.TB, m *matrix.Dense, i int) float64 {
	t.Helper()
	v, err := m.Element(i)
	require.NoError(t, err, "Element(%d)", i)

	return v
}

// RandomDense fills an r×c matrix with values in [-10, 10) from a seeded source.
// Values are rounded to one decimal so fixtures stay readable in failure output.
func RandomDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewFunc(r, c, func(int) float64 {
		return float64(rng.Intn(200)-100) / 10
	})
	require.NoError(t, err)

	return m
}

// RequireClose asserts identical shapes and |got-want| <= tol element-wise.
func RequireClose(t testing.TB, want, got *matrix.Dense, tol float64) {
	t.Helper()
	ok, err := matrix.AllClose(want, got, tol)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ beyond %g:\nwant:\n%vgot:\n%v", tol, want, got)
}
