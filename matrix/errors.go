// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Public operations MUST return these sentinels (optionally wrapped
// with an operation tag) and tests MUST check them via errors.Is.
// No public operation panics on user-triggered error conditions; MustNew is
// the single documented exception.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Facades wrap with fmt.Errorf("<Op>: %w", ErrX);
// callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> empty -> ragged -> dimension mismatch -> index range.

var (
	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrEmptyMatrix is returned when a grid has no rows or its first row has no columns.
	ErrEmptyMatrix = errors.New("matrix: empty matrix")

	// ErrNotRectangular is returned when rows of a grid differ in length.
	ErrNotRectangular = errors.New("matrix: rows differ in length")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Dot where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
