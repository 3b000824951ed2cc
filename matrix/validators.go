// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape validation.
//  - Keep kernels/facades minimal by delegating nil/empty/rectangular/dimension checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - ValidateRows runs O(rows); every other check is O(1).
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → NotEmpty → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[T Number](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateNotEmpty ensures a non-nil matrix holds at least one element.
// Only the zero value Matrix[T]{} can fail this check; public constructors
// never produce an empty matrix.
//
// Implementation: Assumes m is not nil (caller must ensure).
// Complexity: O(1).
func ValidateNotEmpty[T Number](m *Matrix[T]) error {
	if m.r == 0 || m.c == 0 {
		return validatorErrorf("ValidateNotEmpty", ErrEmptyMatrix)
	}

	return nil
}

// ValidateOperand is the composite guard for unary operations: NotNil → NotEmpty.
//
// Errors: ErrNilMatrix, ErrEmptyMatrix.
// Complexity: O(1).
func ValidateOperand[T Number](m *Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateNotEmpty(m)
}

// ValidateRows ensures a row grid is non-empty and rectangular.
//
// Implementation:
//   - Stage 1: reject zero rows or a zero-length first row (ErrEmptyMatrix).
//   - Stage 2: compare every row length against the first (ErrNotRectangular).
//
// Inputs: any row grid; T needs no arithmetic here.
// Returns: nil or a wrapped sentinel naming the first offending row.
// Complexity: O(rows).
func ValidateRows[T any](rows [][]T) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return validatorErrorf("ValidateRows", ErrEmptyMatrix)
	}
	cols := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return validatorErrorf(fmt.Sprintf("ValidateRows: row %d has %d elements, want %d", i, len(rows[i]), cols), ErrNotRectangular)
		}
	}

	return nil
}

// ValidateMulCompatible is the composite guard for Dot:
// Operand(a) → Operand(b) → a.Cols() == b.Rows().
//
// Errors: ErrNilMatrix, ErrEmptyMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible[T Number](a, b *Matrix[T]) error {
	if err := ValidateOperand(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateOperand(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf(fmt.Sprintf("ValidateMulCompatible: %dx%d · %dx%d", a.r, a.c, b.r, b.c), ErrDimensionMismatch)
	}

	return nil
}
