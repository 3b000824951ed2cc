// SPDX-License-Identifier: MIT

// Package matrix - Matrix[T] storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: constructors validate shape, At/Row return
//     errors instead of panicking.
//   - Own the storage: constructors copy caller grids, accessors hand out copies, and no
//     method mutates a built matrix.
//
// Complexity quicksheet:
//   - New: O(r*c) copy; Zeros/Identity: O(r*c) zero-init; At: O(1); Row: O(c); ToRows/Flat: O(r*c).

package matrix

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"      // ctor tag for New
	ctxZeros    = "Zeros"    // ctor tag for Zeros
	ctxIdentity = "Identity" // ctor tag for Identity
	ctxAt       = "At"       // method tag used in error wrappers
	ctxRow      = "Row"      // method tag used in error wrappers
)

// denseErrorf wraps an error with a uniform Matrix context and callsite indices.
// Format: "Matrix.<method>(row,col): <err>"; the sentinel is preserved via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is an immutable dense matrix of Number elements.
//   - r,c hold dimensions (rows, cols); both > 0 for every constructed value.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value is an empty matrix: it renders as "Matrix()" and every
// arithmetic operation rejects it with ErrEmptyMatrix.
type Matrix[T Number] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)

// New builds a matrix from a row-major grid.
//
// Implementation:
//   - Stage 1: ValidateRows (non-empty, rectangular).
//   - Stage 2: copy every row into a fresh flat buffer.
//
// Behavior highlights:
//   - The caller keeps ownership of rows; later writes to it are not observed.
//
// Errors:
//   - ErrEmptyMatrix, ErrNotRectangular (wrapped with "New").
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Number](rows [][]T) (*Matrix[T], error) {
	if err := ValidateRows(rows); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}

	r, c := len(rows), len(rows[0])
	buf := make([]T, r*c)
	for i, row := range rows {
		copy(buf[i*c:(i+1)*c], row)
	}

	return &Matrix[T]{r: r, c: c, data: buf}, nil
}

// MustNew is like New but panics if the grid is empty or ragged.
// Intended for literals in tests and examples where the shape is known.
func MustNew[T Number](rows [][]T) *Matrix[T] {
	m, err := New(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// Zeros creates an r×c matrix of zero values.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0, cols<=0 or rows*cols overflows int.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Zeros[T Number](rows, cols int) (*Matrix[T], error) {
	if !validShape(rows, cols) {
		return nil, matrixErrorf(ctxZeros, ErrInvalidDimensions)
	}

	return newZeros[T](rows, cols), nil
}

// validShape reports whether rows,cols > 0 and rows*cols fits in an int.
func validShape(rows, cols int) bool {
	return rows > 0 && cols > 0 && cols <= math.MaxInt/rows
}

// newZeros allocates without validation; callers guarantee rows,cols > 0.
func newZeros[T Number](rows, cols int) *Matrix[T] {
	return &Matrix[T]{r: rows, c: cols, data: make([]T, rows*cols)}
}

// Identity returns the n×n identity matrix: T(1) on the diagonal, zero elsewhere.
//
// Errors:
//   - ErrInvalidDimensions when n<=0 or n*n overflows int.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Identity[T Number](n int) (*Matrix[T], error) {
	if !validShape(n, n) {
		return nil, matrixErrorf(ctxIdentity, ErrInvalidDimensions)
	}

	m := newZeros[T](n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1 // diagonal offset i*(n+1)
	}

	return m, nil
}

// Rows returns the row count (0 for a nil or zero-value matrix).
// Complexity: O(1).
func (m *Matrix[T]) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the column count (0 for a nil or zero-value matrix).
// Complexity: O(1).
func (m *Matrix[T]) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Matrix[T]) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Assumes m is not nil.
func (m *Matrix[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
//
// Errors:
//   - ErrNilMatrix for a nil receiver.
//   - ErrOutOfRange when indices are outside [0,Rows())×[0,Cols()).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	var zero T
	if err := ValidateNotNil(m); err != nil {
		return zero, denseErrorf(ctxAt, row, col, err)
	}
	idx, err := m.indexOf(row, col)
	if err != nil {
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[idx], nil
}

// Row returns a copy of row i.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
//
// Complexity:
//   - Time O(c), Space O(c).
func (m *Matrix[T]) Row(i int) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, denseErrorf(ctxRow, i, 0, err)
	}
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// ToRows returns a deep copy of the matrix as a row grid.
// A nil or zero-value matrix yields nil.
// Complexity: O(r*c).
func (m *Matrix[T]) ToRows() [][]T {
	if m == nil || m.r == 0 {
		return nil
	}

	out := make([][]T, m.r)
	for i := range out {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Flat returns a copy of the row-major buffer (len == Rows()*Cols()).
// Element (i,j) is at index i*Cols()+j. A nil or zero-value matrix yields nil.
// Complexity: O(r*c).
func (m *Matrix[T]) Flat() []T {
	if m == nil || len(m.data) == 0 {
		return nil
	}

	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Equal reports whether m and other have the same shape and elements.
// Elements compare with ==, so NaN never equals NaN. Two nil matrices are equal.
// Complexity: O(r*c).
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}

	return true
}
