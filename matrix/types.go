// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the container type and its small companion types.
// Constructors live in impl_dense.go, combinators in concat.go and
// transform.go, conversions in conversions.go.
package matrix

// Matrix is a rows×cols grid of T stored in one flat column-major buffer.
//
// Invariants:
//   - len(data) == rows*cols at all times.
//   - element (i, j) lives at data[i + j*rows]; a column is a contiguous run.
//
// A *Matrix is immutable through its public surface: every "mutating"
// operation returns a matrix backed by its own buffer, so a handle obtained
// before a write never observes it. The zero value is a valid 0×0 matrix.
//
// Complexity notes: shape queries and Get are O(1); Set/Update/Clone are
// O(rows*cols) since they copy the buffer.
type Matrix[T any] struct {
	rows, cols int // logical shape (>= 0)
	data       []T // column-major storage, len == rows*cols
}

// Cell is one element of a matrix together with its coordinates.
// Produced by Cells and All in linear (column-major) order.
type Cell[T any] struct {
	Row, Col int // zero-based coordinates
	Value    T   // element stored at (Row, Col)
}
