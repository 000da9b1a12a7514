// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Functional transformations and queries over the flat buffer:
//     Map, Map2, IndexedMap, Filter, Cells, Transpose and the iterators.
//
// Determinism & Performance:
//   - Every loop walks the buffer in linear (column-major) order 0..n-1.
//   - Outputs are freshly allocated; inputs are never mutated.
//   - Map/IndexedMap are package functions because Go methods cannot declare
//     their own type parameters.

package matrix

import "iter"

// Map applies f to every element, preserving shape and order.
// A nil m maps to the empty matrix. f must be non-nil.
// Complexity: O(r*c).
func Map[T, U any](m *Matrix[T], f func(T) U) *Matrix[U] {
	if m == nil {
		return Empty[U]()
	}
	out := newMatrix[U](m.rows, m.cols)
	for k, v := range m.data {
		out.data[k] = f(v)
	}

	return out
}

// Map2 zips a and b element-wise through f.
// MAIN DESCRIPTION:
//   - Pairwise transform over two equally shaped matrices in linear order.
//
// Implementation:
//   - Stage 1: nil checks; both rows and cols must match.
//   - Stage 2: out[k] = f(a[k], b[k]) for k in 0..n-1.
//
// Errors:
//   - ErrNilMatrix; ErrShapeMismatch when sizes differ.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Map2[T, U, V any](a *Matrix[T], b *Matrix[U], f func(T, U) V) (*Matrix[V], error) {
	if err := validatePair("Map2", a, b, true, true); err != nil {
		return nil, err
	}
	out := newMatrix[V](a.rows, a.cols)
	for k := range a.data {
		out.data[k] = f(a.data[k], b.data[k])
	}

	return out, nil
}

// IndexedMap applies f(i, j, v) to every element.
// MAIN DESCRIPTION:
//   - Coordinate-aware map; (i, j) are recovered from the linear offset k as
//     i = k mod rows, j = k div rows (inverse of the offset formula).
//
// Behavior highlights:
//   - A matrix without elements (including rows == 0, where the recovery would
//     divide by zero) short-circuits to an empty result of the same shape.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func IndexedMap[T, U any](m *Matrix[T], f func(i, j int, v T) U) *Matrix[U] {
	if m == nil {
		return Empty[U]()
	}
	out := newMatrix[U](m.rows, m.cols)
	if m.rows == 0 || len(m.data) == 0 {
		return out
	}
	var i, j int
	for k, v := range m.data {
		i, j = m.coords(k)
		out.data[k] = f(i, j, v)
	}

	return out
}

// Filter returns the elements satisfying pred in linear (column-major) order.
// Position information is discarded; the result is a flat slice, never nil.
// Complexity: O(r*c).
func (m *Matrix[T]) Filter(pred func(T) bool) []T {
	out := make([]T, 0)
	for _, v := range m.data {
		if pred(v) {
			out = append(out, v)
		}
	}

	return out
}

// Cells lists every element with its coordinates in linear order.
// Equivalent to IndexedMap producing (i, j, v) triples, flattened.
// Complexity: O(r*c).
func (m *Matrix[T]) Cells() []Cell[T] {
	out := make([]Cell[T], 0, len(m.data))
	for c := range m.All() {
		out = append(out, c)
	}

	return out
}

// All yields every cell in linear order. Stops early when the consumer breaks.
func (m *Matrix[T]) All() iter.Seq[Cell[T]] {
	return func(yield func(Cell[T]) bool) {
		if m.rows == 0 {
			return
		}
		var i, j int
		for k, v := range m.data {
			i, j = m.coords(k)
			if !yield(Cell[T]{Row: i, Col: j, Value: v}) {
				return
			}
		}
	}
}

// Do visits each element (i, j, v) in linear order and stops when f returns false.
// Read-only; no allocations.
func (m *Matrix[T]) Do(f func(i, j int, v T) bool) {
	for c := range m.All() {
		if !f(c.Row, c.Col, c.Value) {
			return
		}
	}
}

// Transpose returns the cols×rows matrix with out(j, i) == m(i, j).
// Structural only: values are moved, never combined.
// Complexity: O(r*c).
func Transpose[T any](m *Matrix[T]) *Matrix[T] {
	if m == nil {
		return Empty[T]()
	}
	out := newMatrix[T](m.cols, m.rows)
	var i, j int
	for k, v := range m.data {
		i, j = m.coords(k)
		// out has m.cols rows: (j, i) -> j + i*m.cols
		out.data[j+i*m.cols] = v
	}

	return out
}
