// SPDX-License-Identifier: MIT

// Package matrix - conversions between Matrix and nested slices, equality and formatting.
//
// Orientation contract:
//   - FromNested/ToNested treat the OUTER slice as the list of columns: each
//     inner slice is one column of height len(inner). This is the native
//     order of the column-major buffer and is never transposed implicitly.
//   - FromRows/ToRows are the explicit row-oriented counterparts.

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[int])(nil)

// FromNested builds a matrix from a slice of columns.
// MAIN DESCRIPTION:
//   - Shape-validated constructor; the outer length becomes the column count,
//     the common inner length becomes the row count.
//
// Implementation:
//   - Stage 1: inner length h = len(cols[0]) (0 when cols is empty).
//   - Stage 2: reject any inner slice whose length differs from h.
//   - Stage 3: copy the columns back to back into the flat buffer.
//
// Behavior highlights:
//   - Ragged input is rejected as a whole; no partial matrix is produced.
//   - Empty outer slice yields 0×0. Input slices are copied, never aliased.
//
// Errors:
//   - ErrShapeMismatch (wrapped with the offending column index).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromNested[T any](cols [][]T) (*Matrix[T], error) {
	if len(cols) == 0 {
		return Empty[T](), nil
	}
	h := len(cols[0])
	for j := range cols {
		if len(cols[j]) != h {
			return nil, fmt.Errorf("matrix.FromNested: column %d has length %d, want %d: %w",
				j, len(cols[j]), h, ErrShapeMismatch)
		}
	}

	out := newMatrix[T](h, len(cols))
	for j := range cols {
		copy(out.data[j*h:(j+1)*h], cols[j])
	}

	return out, nil
}

// FromRows builds a matrix from a slice of rows (outer slice = rows).
// Errors: ErrShapeMismatch for ragged rows. Empty input yields 0×0.
// Complexity: O(r*c).
func FromRows[T any](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 {
		return Empty[T](), nil
	}
	w := len(rows[0])
	for i := range rows {
		if len(rows[i]) != w {
			return nil, fmt.Errorf("matrix.FromRows: row %d has length %d, want %d: %w",
				i, len(rows[i]), w, ErrShapeMismatch)
		}
	}

	r := len(rows)
	out := newMatrix[T](r, w)
	for i := range rows {
		for j, v := range rows[i] {
			out.data[i+j*r] = v
		}
	}

	return out, nil
}

// ToNested returns the columns as independent slices; inverse of FromNested.
// A matrix with zero columns returns an empty (non-nil) outer slice.
func (m *Matrix[T]) ToNested() [][]T {
	out := make([][]T, m.cols)
	for j := range out {
		out[j], _ = m.Column(j)
	}

	return out
}

// ToRows returns the rows as independent slices; inverse of FromRows.
func (m *Matrix[T]) ToRows() [][]T {
	out := make([][]T, m.rows)
	for i := range out {
		out[i], _ = m.Row(i)
	}

	return out
}

// Equal reports whether a and b have the same shape and identical elements.
// Two nil matrices are equal; nil never equals a non-nil matrix.
func Equal[T comparable](a, b *Matrix[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element comparison.
// Complexity: O(r*c) worst case, early exit on first difference.
func EqualFunc[T, U any](a *Matrix[T], b *Matrix[U], eq func(T, U) bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for k := range a.data {
		if !eq(a.data[k], b.data[k]) {
			return false
		}
	}

	return true
}

// String renders the matrix row by row, e.g. "[1, 2]\n[3, 4]\n".
// Values use the %v verb. Intended for debugging, not hot paths.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.rows; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.cols; j++ {
			fmt.Fprintf(&b, "%v", m.data[i+j*m.rows])
			if j+1 < m.cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
