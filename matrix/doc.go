// Package matrix provides Matrix[T], a generic dense 2-D container backed by
// a single flat column-major buffer.
//
// The matrix package provides:
//
//   - Shape-checked construction: Empty, Repeat, RepeatFunc, FromNested
//     (outer slice = columns) and FromRows.
//   - O(1) element access with explicit offset arithmetic (i + j*rows);
//     out-of-range reads report ok=false, out-of-range writes are no-ops.
//   - Row and column extraction, where a column is a contiguous buffer range.
//   - Structural composition: ConcatHorizontal and ConcatVertical, both
//     returning ErrShapeMismatch on incompatible operands.
//   - Functional transforms: Map, Map2, IndexedMap, Filter, Cells, Transpose.
//
// Every operation is pure: writes return a new matrix with its own buffer and
// never modify the receiver. There is no sparse storage and no numeric linear
// algebra here; the element type is unconstrained.
//
// See the examples in this package for usage patterns.
package matrix
