// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Transposition selects the axis or diagonal a square matrix is reflected
// across. The zero value is MainDiagonal.
//
// Each mode is a pure index remapping: for an n×n matrix the output
// element at linear index i is the source element at source(n, i).
//
//	( 0, 1, 2 )   MainDiagonal   ( 0, 3, 6 )   SideDiagonal  ( 8, 5, 2 )
//	( 3, 4, 5 )   ───────────▶   ( 1, 4, 7 )                 ( 7, 4, 1 )
//	( 6, 7, 8 )                  ( 2, 5, 8 )                 ( 6, 3, 0 )
//
//	VerticalAxis  ( 2, 1, 0 )   HorizontalAxis  ( 6, 7, 8 )
//	              ( 5, 4, 3 )                   ( 3, 4, 5 )
//	              ( 8, 7, 6 )                   ( 0, 1, 2 )
type Transposition int

const (
	// MainDiagonal swaps rows and columns (the standard transpose).
	MainDiagonal Transposition = iota
	// SideDiagonal reflects across the anti-diagonal.
	SideDiagonal
	// VerticalAxis mirrors columns: every row is reversed.
	VerticalAxis
	// HorizontalAxis mirrors rows: row order is reversed.
	HorizontalAxis
)

// Transpositions lists every mode in declaration order.
var Transpositions = []Transposition{MainDiagonal, SideDiagonal, VerticalAxis, HorizontalAxis}

var transpositionNames = [...]string{
	MainDiagonal:   "main diagonal",
	SideDiagonal:   "side diagonal",
	VerticalAxis:   "vertical axis",
	HorizontalAxis: "horizontal axis",
}

// transpositionFormulas maps a mode to its source-index formula for size n.
var transpositionFormulas = [...]func(n, i int) int{
	MainDiagonal:   func(n, i int) int { return i/n + (i%n)*n },
	SideDiagonal:   func(n, i int) int { return n*(n-i%n) - i/n - 1 },
	VerticalAxis:   func(n, i int) int { return n - i%n - 1 + (i/n)*n },
	HorizontalAxis: func(n, i int) int { return n*(n-i/n-1) + i%n },
}

// Valid reports whether t is one of the four declared modes.
func (t Transposition) Valid() bool {
	return t >= MainDiagonal && t <= HorizontalAxis
}

// String implements fmt.Stringer.
func (t Transposition) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Transposition(%d)", int(t))
	}

	return transpositionNames[t]
}

// source returns the source linear index feeding output index i of an n×n matrix.
func (t Transposition) source(n, i int) int {
	return transpositionFormulas[t](n, i)
}

// Transpose reflects the square matrix m according to mode.
// Implementation:
//   - Stage 1: validate the mode, then ValidateSquare(m).
//   - Stage 2: out[i] = m[mode.source(n, i)] for every linear index i.
//
// Errors:
//   - ErrUnknownTransposition, ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func Transpose(m *Dense, mode Transposition) (*Dense, error) {
	if !mode.Valid() {
		return nil, matrixErrorf(opTranspose, fmt.Errorf("%v: %w", mode, ErrUnknownTransposition))
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	n := m.r
	return generate(n, n, func(i int) float64 { return m.data[mode.source(n, i)] }), nil
}

// T is the no-argument transpose: Transpose(m, MainDiagonal).
func T(m *Dense) (*Dense, error) { return Transpose(m, MainDiagonal) }
