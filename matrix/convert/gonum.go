// SPDX-License-Identifier: MIT

package convert

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/genmat/matrix"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies m into a new *mat.Dense with the same shape.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrEmptyMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ToGonum(m *matrix.Matrix[float64]) (*mat.Dense, error) {
	if err := matrix.ValidateOperand(m); err != nil {
		return nil, convertErrorf(opToGonum, err)
	}
	r, c := m.Shape()

	// Flat already hands back a private copy, so mat.NewDense may keep it.
	return mat.NewDense(r, c, m.Flat()), nil
}

// FromGonum copies any gonum matrix into a Matrix[float64].
// Views and lazy transposes (src.T()) are read through At, so the result
// always reflects the logical contents of src.
//
// Errors:
//   - matrix.ErrNilMatrix when src is nil.
//   - matrix.ErrEmptyMatrix when src has a zero dimension (e.g. a zero mat.Dense).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromGonum(src mat.Matrix) (*matrix.Matrix[float64], error) {
	if src == nil {
		return nil, convertErrorf(opFromGonum, matrix.ErrNilMatrix)
	}
	if d, ok := src.(*mat.Dense); ok && (d == nil || d.IsEmpty()) {
		return nil, convertErrorf(opFromGonum, matrix.ErrEmptyMatrix)
	}
	r, c := src.Dims()
	if r == 0 || c == 0 {
		return nil, convertErrorf(opFromGonum, matrix.ErrEmptyMatrix)
	}

	rows := make([][]float64, r)
	var i, j int
	for i = 0; i < r; i++ {
		rows[i] = make([]float64, c)
		for j = 0; j < c; j++ {
			rows[i][j] = src.At(i, j)
		}
	}

	m, err := matrix.New(rows)
	if err != nil {
		return nil, convertErrorf(opFromGonum, err)
	}

	return m, nil
}

// convertErrorf wraps err with an operation tag, preserving it for errors.Is.
func convertErrorf(tag string, err error) error {
	return fmt.Errorf("convert.%s: %w", tag, err)
}
