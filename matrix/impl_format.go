// SPDX-License-Identifier: MIT

// Package matrix - human-readable rendering of Matrix[T].
//
// The format is cosmetic and not parseable: elements use their default fmt
// form joined by "," and rows are separated by a newline plus seven spaces,
// so continuation rows line up under the "Matrix(" label.
//
//	Matrix(1,2
//	       3,4)

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen   = "Matrix("
	_fmtClose  = ")"
	_fmtSep    = ","
	_fmtRowSep = "\n       " // newline + len(_fmtOpen) spaces
)

// String implements fmt.Stringer.
// Rows are separated by _fmtRowSep with no separator after the last row, so a
// one-row matrix has no newline at all. Nil and zero-value matrices render as
// "Matrix()".
// Complexity: O(r*c) for string construction.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	if m != nil {
		var i, j int
		for i = 0; i < m.r; i++ {
			if i > 0 {
				sb.WriteString(_fmtRowSep)
			}
			for j = 0; j < m.c; j++ {
				if j > 0 {
					sb.WriteString(_fmtSep)
				}
				fmt.Fprint(&sb, m.data[i*m.c+j])
			}
		}
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}
