// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for constructors and kernels.
//   • Keep random data integral-valued so float sums are exact and comparable with ==.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/genmat/matrix"
	"github.com/stretchr/testify/require"
)

// MustMatrix builds a matrix from rows or fails the test.
func MustMatrix[T matrix.Number](tb testing.TB, rows [][]T) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.New(rows)
	require.NoError(tb, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt[T matrix.Number](tb testing.TB, m *matrix.Matrix[T], i, j int) T {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// MustIdentity returns the n×n identity or fails the test.
func MustIdentity[T matrix.Number](tb testing.TB, n int) *matrix.Matrix[T] {
	tb.Helper()
	id, err := matrix.Identity[T](n)
	require.NoError(tb, err)

	return id
}

// MustDot multiplies a·b or fails the test.
func MustDot[T matrix.Number](tb testing.TB, a, b *matrix.Matrix[T]) *matrix.Matrix[T] {
	tb.Helper()
	res, err := a.Dot(b)
	require.NoError(tb, err)

	return res
}

// MustTranspose transposes m or fails the test.
func MustTranspose[T matrix.Number](tb testing.TB, m *matrix.Matrix[T]) *matrix.Matrix[T] {
	tb.Helper()
	res, err := m.Transpose()
	require.NoError(tb, err)

	return res
}

// randomRows fills an r×c grid with integers in [-9, 9] from a seeded source.
func randomRows(r, c int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		for j := range out[i] {
			out[i][j] = float64(rng.Intn(19) - 9)
		}
	}

	return out
}

// RequireShape asserts the (rows, cols) of m.
func RequireShape[T matrix.Number](tb testing.TB, m *matrix.Matrix[T], rows, cols int) {
	tb.Helper()
	r, c := m.Shape()
	require.Equal(tb, rows, r, "rows")
	require.Equal(tb, cols, c, "cols")
}
