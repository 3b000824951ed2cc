// Package matrix offers a small generic dense matrix type.
//
// The matrix package provides:
//
//   - Matrix[T], an immutable row-major container over any Number kind
//     (integers, floats and complex numbers).
//   - Dot for matrix multiplication and Transpose, both returning fresh values.
//   - TransposeRows for plain row grids of any element type.
//   - A compact String rendering for logs and debugging.
//
// Shape contracts are checked up front: New rejects empty and ragged grids,
// Dot rejects operands whose inner dimensions differ. Failures are reported
// with the sentinels in errors.go and never by panicking.
//
// Because no method mutates a Matrix, a value can be read from many
// goroutines without synchronization.
//
// See the examples in this package and the convert subpackage for
// interop with gonum and gorgonia.
package matrix
