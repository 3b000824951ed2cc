// SPDX-License-Identifier: MIT

// Package matrix: element type constraints.
// This file contains ONLY the generic constraints that bound Matrix element
// types. Operations rely on the built-in arithmetic of these kinds:
// multiplication, in-place accumulation (+=), copy by value and the zero
// value as the accumulator seed.
package matrix

// Integer is the set of signed and unsigned integer kinds.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of floating-point kinds.
type Float interface {
	~float32 | ~float64
}

// Complex is the set of complex kinds.
type Complex interface {
	~complex64 | ~complex128
}

// Number is the element constraint of Matrix.
// Overflow and rounding follow the native arithmetic of the kind and are
// never detected by this package.
type Number interface {
	Integer | Float | Complex
}
