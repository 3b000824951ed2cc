// Package matrix_test contains unit tests for Dot and Transpose.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/genmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestDotTwoByTwoFloat(t *testing.T) {
	a := MustMatrix(t, [][]float64{{2, 2}, {4, 4}})
	b := MustMatrix(t, a.ToRows())

	got := MustDot(t, a, b)
	want := MustMatrix(t, [][]float64{{12, 12}, {24, 24}})
	require.True(t, want.Equal(got), "got %v", got)
}

func TestDotTwoByTwoInt32(t *testing.T) {
	a := MustMatrix(t, [][]int32{{2, 2}, {4, 4}})
	b := MustMatrix(t, a.ToRows())

	got := MustDot(t, a, b)
	require.Equal(t, [][]int32{{12, 12}, {24, 24}}, got.ToRows())
}

func TestDotThreeByThree(t *testing.T) {
	rows := [][]float64{{2, 2, 2}, {4, 4, 4}, {6, 6, 6}}
	c := MustMatrix(t, rows)
	d := MustMatrix(t, rows)

	got := MustDot(t, c, d)
	require.Equal(t, [][]float64{{24, 24, 24}, {48, 48, 48}, {72, 72, 72}}, got.ToRows())
}

func TestDotRectangular(t *testing.T) {
	// (2×3)·(3×2)
	a := MustMatrix(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	b := MustMatrix(t, [][]int{{7, 8}, {9, 10}, {11, 12}})

	got := MustDot(t, a, b)
	RequireShape(t, got, 2, 2)
	require.Equal(t, [][]int{{58, 64}, {139, 154}}, got.ToRows())

	// (3×2)·(2×3) gives the other outer shape
	RequireShape(t, MustDot(t, b, a), 3, 3)
}

func TestDotComplex(t *testing.T) {
	a := MustMatrix(t, [][]complex128{{1i, 1}})
	b := MustMatrix(t, [][]complex128{{1i}, {2}})

	got := MustDot(t, a, b)
	require.Equal(t, [][]complex128{{1}}, got.ToRows()) // i*i + 1*2
}

func TestDotPropagatesNaN(t *testing.T) {
	a := MustMatrix(t, [][]float64{{0, 1}})
	b := MustMatrix(t, [][]float64{{math.NaN()}, {1}})

	got := MustDot(t, a, b)
	require.True(t, math.IsNaN(MustAt(t, got, 0, 0)), "0*NaN must not be skipped")
}

func TestDotIntegerOverflowWraps(t *testing.T) {
	a := MustMatrix(t, [][]uint8{{16}})

	got := MustDot(t, a, a)
	require.Equal(t, uint8(0), MustAt(t, got, 0, 0)) // 256 mod 256
}

func TestDotErrors(t *testing.T) {
	a := MustMatrix(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustMatrix(t, [][]float64{{1, 2}, {3, 4}})

	_, err := a.Dot(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "Dot")

	_, err = a.Dot(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.Contains(t, err.Error(), "nil matrix") // argument, not receiver

	var nilM *matrix.Matrix[float64]
	_, err = nilM.Dot(a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = (&matrix.Matrix[float64]{}).Dot(a)
	require.ErrorIs(t, err, matrix.ErrEmptyMatrix)
}

func TestDotDoesNotMutateOperands(t *testing.T) {
	a := MustMatrix(t, [][]int{{1, 2}, {3, 4}})
	b := MustMatrix(t, [][]int{{5, 6}, {7, 8}})

	_ = MustDot(t, a, b)
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, a.ToRows())
	require.Equal(t, [][]int{{5, 6}, {7, 8}}, b.ToRows())
}

func TestTranspose(t *testing.T) {
	a := MustMatrix(t, [][]int{{1, 2}, {3, 4}, {5, 6}})

	got := MustTranspose(t, a)
	RequireShape(t, got, 2, 3)
	require.Equal(t, [][]int{{1, 3, 5}, {2, 4, 6}}, got.ToRows())
	require.Equal(t, [][]int{{1, 2}, {3, 4}, {5, 6}}, a.ToRows()) // input untouched
}

func TestTransposeSingleRowAndColumn(t *testing.T) {
	row := MustMatrix(t, [][]float32{{1, 2, 3}})
	col := MustTranspose(t, row)
	RequireShape(t, col, 3, 1)
	require.Equal(t, [][]float32{{1}, {2}, {3}}, col.ToRows())
}

func TestTransposeErrors(t *testing.T) {
	var nilM *matrix.Matrix[int]
	_, err := nilM.Transpose()
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = (&matrix.Matrix[int]{}).Transpose()
	require.ErrorIs(t, err, matrix.ErrEmptyMatrix)
}

func TestTransposeRows(t *testing.T) {
	got, err := matrix.TransposeRows([][]string{{"a", "b", "c"}, {"d", "e", "f"}})
	require.NoError(t, err)
	require.Equal(t, [][]string{{"a", "d"}, {"b", "e"}, {"c", "f"}}, got)

	_, err = matrix.TransposeRows([][]bool{{true}, {false, true}})
	require.ErrorIs(t, err, matrix.ErrNotRectangular)

	_, err = matrix.TransposeRows[int](nil)
	require.ErrorIs(t, err, matrix.ErrEmptyMatrix)
}

// TestTransposeRowsOutputRowsAreIndependent guards the shared backing array:
// appending to one output row must not overwrite the next.
func TestTransposeRowsOutputRowsAreIndependent(t *testing.T) {
	got, err := matrix.TransposeRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	_ = append(got[0], 99)
	require.Equal(t, []int{2, 4}, got[1])
}

func TestDotAgreesWithNaiveTripleLoop(t *testing.T) {
	for _, tc := range []struct{ r, n, c int }{
		{1, 1, 1},
		{2, 3, 4},
		{5, 1, 5},
		{7, 6, 3},
	} {
		tc := tc
		t.Run(fmt.Sprintf("%dx%d·%dx%d", tc.r, tc.n, tc.n, tc.c), func(t *testing.T) {
			ar := randomRows(tc.r, tc.n, int64(tc.r*31+tc.n))
			br := randomRows(tc.n, tc.c, int64(tc.c*17+tc.n))

			got := MustDot(t, MustMatrix(t, ar), MustMatrix(t, br))
			RequireShape(t, got, tc.r, tc.c)
			var i, j, k int
			for i = 0; i < tc.r; i++ {
				for j = 0; j < tc.c; j++ {
					var sum float64
					for k = 0; k < tc.n; k++ {
						sum += ar[i][k] * br[k][j]
					}
					require.Equal(t, sum, MustAt(t, got, i, j), "cell (%d,%d)", i, j)
				}
			}
		})
	}
}
