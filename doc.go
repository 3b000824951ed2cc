// Package genmat is a small generic dense-matrix toolkit.
//
// Under the hood, everything is organized under a few subpackages:
//
//	matrix/         — Matrix[T]: construction, Dot, Transpose, String
//	matrix/convert/ — copies to and from gonum mat.Dense and gorgonia tensor.Dense
//	cmd/matdot/     — CLI that multiplies or transposes matrices read from JSON
//
// Matrices are immutable once built. Shape errors (empty, ragged,
// mismatched inner dimensions) come back as sentinel errors, never panics.
//
// Quick start:
//
//	a := matrix.MustNew([][]int{{2, 2}, {4, 4}})
//	p, err := a.Dot(a)
//	if err != nil {
//		return err
//	}
//	fmt.Println(p) // Matrix(12,12
//	               //        24,24)
package genmat
