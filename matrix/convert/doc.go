// Package convert moves data between matrix.Matrix and the dense types of
// the wider Go numeric ecosystem.
//
//   - gonum.org/v1/gonum/mat: ToGonum / FromGonum for float64 matrices.
//   - gorgonia.org/tensor: ToTensor / FromTensor for 2-D tensors of builtin kinds.
//
// Every converter copies. A Matrix never shares storage with a gonum or
// gorgonia value, so the immutability of Matrix survives a round trip.
package convert
