// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Shape-checked structural composition of two matrices.
//
// Design:
//   - Column-major layout decides the cost profile. Joining side by side
//     (ConcatHorizontal) keeps every column intact, so the result buffer is
//     a.data followed by b.data. Stacking (ConcatVertical) lengthens every
//     column, so the result buffer is rebuilt column by column, interleaving
//     column j of a with column j of b.
//   - Results always own a fresh buffer; inputs are never aliased.

package matrix

// ConcatHorizontal places b's columns to the right of a's columns.
// MAIN DESCRIPTION:
//   - Side-by-side join; result shape is height(a) × (width(a)+width(b)).
//
// Implementation:
//   - Stage 1: nil checks; heights must match.
//   - Stage 2: allocate len(a)+len(b) and copy a's buffer then b's buffer.
//
// Errors:
//   - ErrNilMatrix; ErrShapeMismatch when heights differ.
//
// Complexity:
//   - Time O(len(a)+len(b)), Space O(len(a)+len(b)).
func ConcatHorizontal[T any](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := validatePair("ConcatHorizontal", a, b, true, false); err != nil {
		return nil, err
	}

	out := newMatrix[T](a.rows, a.cols+b.cols)
	n := copy(out.data, a.data)
	copy(out.data[n:], b.data)

	return out, nil
}

// ConcatVertical places b's rows below a's rows.
// MAIN DESCRIPTION:
//   - Stacking join; result shape is (height(a)+height(b)) × width(a).
//
// Implementation:
//   - Stage 1: nil checks; widths must match.
//   - Stage 2: for each column j, copy a's column j then b's column j into
//     the contiguous result column.
//
// Errors:
//   - ErrNilMatrix; ErrShapeMismatch when widths differ.
//
// Complexity:
//   - Time O(len(a)+len(b)), Space O(len(a)+len(b)).
func ConcatVertical[T any](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := validatePair("ConcatVertical", a, b, false, true); err != nil {
		return nil, err
	}

	h := a.rows + b.rows
	out := newMatrix[T](h, a.cols)
	var j, dst int
	for j = 0; j < a.cols; j++ {
		dst = j * h
		copy(out.data[dst:dst+a.rows], a.data[j*a.rows:(j+1)*a.rows])
		copy(out.data[dst+a.rows:dst+h], b.data[j*b.rows:(j+1)*b.rows])
	}

	return out, nil
}
