// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide an immutable row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: Element/At return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Own every buffer exclusively: constructors copy, Elements returns a copy.
//
// Complexity quicksheet:
//   - New/NewFunc: O(r*c); Element/At: O(1); Elements: O(r*c); Identity: O(n^2).

package matrix

import "fmt"

// ---------- error context tags ----------

const (
	ctxNew     = "New"     // ctor tag used in error wrappers
	ctxNewFunc = "NewFunc" // ctor tag used in error wrappers
	ctxElement = "Element" // method tag used in error wrappers
	ctxAt      = "At"      // method tag used in error wrappers
)

// _growChunk is the initial capacity NewFuncErr reserves.
const _growChunk = 1024

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//   - Stage 2: return wrapped error.
//
// Inputs:
//   - method: context tag (ctxAt/ctxElement/...)
//   - row, col: coordinates (for linear access row is the linear index, col is -1)
//   - err: sentinel (e.g., ErrOutOfRange)
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is an immutable row-major matrix of float64 values.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A *Dense is never mutated after construction, so it is safe to share
// between goroutines. Every operation returns a freshly allocated *Dense.
type Dense struct {
	r, c int       // row and column counts (>=0)
	data []float64 // contiguous row-major storage (len == r*c), owned exclusively
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// New creates an rows×cols matrix wrapping a copy of elements.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: ValidateDims(rows, cols); else ErrInvalidDimensions.
//   - Stage 2: validate len(elements) == rows*cols; else ErrDimensionMismatch.
//   - Stage 3: copy elements into a fresh buffer.
//
// Behavior highlights:
//   - The caller keeps ownership of elements; later writes to it are not observed.
//   - 0×N, N×0 and 0×0 are legal.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch (wrapped with "Dense.New").
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int, elements []float64) (*Dense, error) {
	if err := ValidateDims(rows, cols); err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxNew, err)
	}
	if len(elements) != rows*cols {
		return nil, fmt.Errorf("Dense.%s(%d,%d): %d elements: %w",
			ctxNew, rows, cols, len(elements), ErrDimensionMismatch)
	}
	buf := make([]float64, len(elements))
	copy(buf, elements)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewFunc builds an rows×cols matrix by evaluating fn(i) for every linear
// index i in [0, rows*cols) in increasing order.
// It is equivalent to New(rows, cols, []float64{fn(0), fn(1), ...}).
//
// Errors: ErrInvalidDimensions on negative or oversized dimensions.
// Complexity: O(r*c) calls of fn.
func NewFunc(rows, cols int, fn func(i int) float64) (*Dense, error) {
	return NewFuncErr(rows, cols, func(i int) (float64, error) { return fn(i), nil })
}

// NewFuncErr is NewFunc for generators that can fail, such as a reader
// pulling values from an input stream. The first generator error aborts
// construction and is returned wrapped with the failing linear index.
// The buffer grows as values arrive, so a large shape whose generator
// fails early never allocates the full rows*cols.
func NewFuncErr(rows, cols int, fn func(i int) (float64, error)) (*Dense, error) {
	if err := ValidateDims(rows, cols); err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxNewFunc, err)
	}
	n := rows * cols
	buf := make([]float64, 0, min(n, _growChunk))
	for i := 0; i < n; i++ { // fixed increasing order
		v, err := fn(i)
		if err != nil {
			return nil, fmt.Errorf("Dense.%s: element %d: %w", ctxNewFunc, i, err)
		}
		buf = append(buf, v)
	}

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// newDense allocates a zero-filled result for internal kernels.
// Dimensions are trusted (already validated by the caller).
func newDense(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// generate is the internal counterpart of NewFunc for trusted shapes.
func generate(rows, cols int, fn func(i int) float64) *Dense {
	m := newDense(rows, cols)
	for i := range m.data {
		m.data[i] = fn(i)
	}

	return m
}

// Identity returns the size×size identity matrix: 1.0 at linear indices
// 0, size+1, 2*(size+1), ... and 0.0 elsewhere.
// Errors: ErrInvalidDimensions when size < 0 or size*size > MaxElements.
func Identity(size int) (*Dense, error) {
	if err := ValidateDims(size, size); err != nil {
		return nil, fmt.Errorf("Identity(%d): %w", size, err)
	}
	m := newDense(size, size)
	for i := 0; i < len(m.data); i += size + 1 { // walk the main diagonal
		m.data[i] = 1.0
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Len returns rows*cols, the number of linear indices.
func (m *Dense) Len() int { return len(m.data) }

// IsSquare reports whether Rows() == Cols().
func (m *Dense) IsSquare() bool { return m.r == m.c }

// Element returns the value at linear index i or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read by row-major linear index.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns a wrapped sentinel.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Element(i int) (float64, error) {
	if i < 0 || i >= len(m.data) {
		return 0, denseErrorf(ctxElement, i, -1, ErrOutOfRange)
	}

	return m.data[i], nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates; equals Element(row*Cols()+col).
//
// Implementation:
//   - Stage 1: validate 0 ≤ row < r and 0 ≤ col < c.
//   - Stage 2: load from flat buffer at row*c + col.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	// Row-major offset: i*c + j.
	return m.data[row*m.c+col], nil
}

// Elements returns a copy of the row-major buffer.
// Complexity: O(r*c).
func (m *Dense) Elements() []float64 {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return cp
}

// Equal reports whether a and b have the same shape and bitwise-equal
// elements (IEEE ==, so NaN never equals NaN).
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}
