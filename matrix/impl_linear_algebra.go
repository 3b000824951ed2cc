// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels of Matrix[T]: matrix
// multiplication (Dot) and transpose. All kernels perform strict fail-fast
// validation through validators.go and return clear errors on misuse.
//
// Purpose:
//   - Define operation tags for uniform error reporting.
//   - Keep kernels pure: inputs are never mutated, results are fresh allocations.
//
// Determinism:
//   - Fixed loop orders independent of values; accumulation for every output
//     cell runs k = 0..n-1.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opDot       = "Dot"
	opTranspose = "Transpose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Dot returns the matrix product m·other.
// Element (i,j) of the result is Σ_k m[i,k]*other[k,j], seeded with the zero value of T.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(m, other). Allocate zero result (m.Rows × other.Cols).
//   - Stage 2: row-major i→k→j loop, accumulating into res.data with +=.
//
// Behavior highlights:
//   - For each output cell the terms are added in order k = 0..n-1, the same
//     order as an i→j→k loop, so float results are reproducible.
//   - No zero-skipping: 0*NaN and 0*Inf still propagate NaN.
//   - Inputs remain immutable.
//
// Inputs:
//   - m: left matrix (r × n).
//   - other: right matrix (n × c).
//
// Returns:
//   - *Matrix[T]: new matrix with shape (r × c).
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrDimensionMismatch (wrapped with "Dot").
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Matrix[T]) Dot(other *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateMulCompatible(m, other); err != nil {
		return nil, matrixErrorf(opDot, err)
	}

	rows, inner, cols := m.r, m.c, other.c
	res := newZeros[T](rows, cols)

	var (
		i, j, k                            int // loop iterators
		av                                 T
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < rows; i++ {
		rowOffsetA = i * inner
		rowOffsetR = i * cols
		for k = 0; k < inner; k++ {
			av = m.data[rowOffsetA+k]
			rowOffsetB = k * cols
			for j = 0; j < cols; j++ {
				res.data[rowOffsetR+j] += av * other.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Element (i,j) of the result equals element (j,i) of m; shape is Cols × Rows.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix (wrapped with "Transpose").
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix[T]) Transpose() (*Matrix[T], error) {
	if err := ValidateOperand(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.r, m.c
	res := newZeros[T](cols, rows) // dims flipped

	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}

// TransposeRows transposes a row grid of any element type.
// It needs no arithmetic on T, only copy by value, so it also serves
// grids of strings, structs or bools.
//
// Errors:
//   - ErrEmptyMatrix, ErrNotRectangular (wrapped with "Transpose").
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func TransposeRows[T any](rows [][]T) ([][]T, error) {
	if err := ValidateRows(rows); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	r, c := len(rows), len(rows[0])
	buf := make([]T, r*c) // single backing array shared by the output rows
	out := make([][]T, c)
	for j := 0; j < c; j++ {
		out[j] = buf[j*r : (j+1)*r : (j+1)*r]
		for i := 0; i < r; i++ {
			out[j][i] = rows[i][j]
		}
	}

	return out, nil
}
