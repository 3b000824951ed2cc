// SPDX-License-Identifier: MIT

package convert

import (
	"errors"
	"fmt"

	"gorgonia.org/tensor"

	"github.com/katalvlaran/genmat/matrix"
)

const (
	opToTensor   = "ToTensor"
	opFromTensor = "FromTensor"
)

var (
	// ErrNotMatrix is returned when a tensor does not have exactly two dimensions.
	ErrNotMatrix = errors.New("convert: tensor is not 2-D")

	// ErrDtypeMismatch is returned when tensor elements are not of the requested Go type.
	ErrDtypeMismatch = errors.New("convert: tensor dtype mismatch")
)

// TensorElement lists the element types gorgonia can back directly with a
// Go slice. Named types (~float64 and friends) are excluded because the
// tensor package infers its Dtype from the exact slice type.
type TensorElement interface {
	float32 | float64 | int | int32 | int64 | uint8
}

// ToTensor copies m into a new row-major *tensor.Dense of shape (rows, cols).
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrEmptyMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ToTensor[T TensorElement](m *matrix.Matrix[T]) (*tensor.Dense, error) {
	if err := matrix.ValidateOperand(m); err != nil {
		return nil, convertErrorf(opToTensor, err)
	}
	r, c := m.Shape()

	return tensor.New(tensor.WithShape(r, c), tensor.WithBacking(m.Flat())), nil
}

// FromTensor copies a 2-D tensor into a Matrix[T].
// Elements are read through At, so transposed or sliced views are honored.
//
// Errors:
//   - matrix.ErrNilMatrix when t is nil.
//   - ErrNotMatrix when t.Dims() != 2.
//   - matrix.ErrEmptyMatrix when a dimension is zero.
//   - ErrDtypeMismatch when an element is not a T.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromTensor[T TensorElement](t tensor.Tensor) (*matrix.Matrix[T], error) {
	if t == nil {
		return nil, convertErrorf(opFromTensor, matrix.ErrNilMatrix)
	}
	if t.Dims() != 2 {
		return nil, convertErrorf(opFromTensor, fmt.Errorf("shape %v: %w", t.Shape(), ErrNotMatrix))
	}
	shape := t.Shape()
	r, c := shape[0], shape[1]
	if r == 0 || c == 0 {
		return nil, convertErrorf(opFromTensor, matrix.ErrEmptyMatrix)
	}

	rows := make([][]T, r)
	var (
		i, j int
		v    interface{}
		zero T
		err  error
	)
	for i = 0; i < r; i++ {
		rows[i] = make([]T, c)
		for j = 0; j < c; j++ {
			if v, err = t.At(i, j); err != nil {
				return nil, convertErrorf(opFromTensor, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			x, ok := v.(T)
			if !ok {
				return nil, convertErrorf(opFromTensor, fmt.Errorf("got %T, want %T: %w", v, zero, ErrDtypeMismatch))
			}
			rows[i][j] = x
		}
	}

	m, err := matrix.New(rows)
	if err != nil {
		return nil, convertErrorf(opFromTensor, err)
	}

	return m, nil
}
