// SPDX-License-Identifier: MIT

// Package matrix - column-major flat storage & safe accessors.
//
// Purpose:
//   - Keep every element in one contiguous buffer with the explicit offset formula i + j*rows.
//   - Guarantee safety at the public surface: out-of-range reads report ok=false,
//     out-of-range writes are silent no-ops; nothing panics on user coordinates.
//   - Keep values independent: writes copy the buffer (replace-on-mutate), so two
//     handles never share a mutable backing slice.
//
// Complexity quicksheet:
//   - Empty: O(1); Repeat: O(r*c); Get: O(1); Set/Update: O(r*c) copy;
//     Row: O(c) gather; Column: O(r) contiguous copy; Clone: O(r*c).

package matrix

// Empty returns the 0×0 matrix. Always succeeds.
// Complexity: O(1).
func Empty[T any]() *Matrix[T] {
	return &Matrix[T]{data: []T{}}
}

// newMatrix is the internal allocation point for a rows×cols buffer of zero values.
// Callers guarantee rows, cols >= 0.
func newMatrix[T any](rows, cols int) *Matrix[T] {
	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
}

// Repeat creates a rows×cols matrix with every cell set to value.
// MAIN DESCRIPTION:
//   - Filled constructor; zero rows or zero cols are legal and yield an empty buffer.
//
// Implementation:
//   - Stage 1: reject negative dimensions.
//   - Stage 2: allocate the flat buffer once.
//   - Stage 3: assign value into every slot (Go assignment copies the value).
//
// Behavior highlights:
//   - For value types each cell is an independent copy. For reference-like T
//     (pointers, slices, maps) the reference itself is copied; use RepeatFunc
//     when every cell needs its own referent.
//
// Errors:
//   - ErrInvalidDimensions when rows < 0 or cols < 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Repeat[T any](rows, cols int, value T) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf("Repeat", ErrInvalidDimensions)
	}
	m := newMatrix[T](rows, cols)
	for k := range m.data {
		m.data[k] = value
	}

	return m, nil
}

// RepeatFunc creates a rows×cols matrix whose cells are produced by fill,
// called once per cell in linear (column-major) order.
//
// Errors: ErrInvalidDimensions for negative dimensions, ErrNilFunc for a nil fill.
// Complexity: O(r*c) calls to fill.
func RepeatFunc[T any](rows, cols int, fill func() T) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf("RepeatFunc", ErrInvalidDimensions)
	}
	if fill == nil {
		return nil, matrixErrorf("RepeatFunc", ErrNilFunc)
	}
	m := newMatrix[T](rows, cols)
	for k := range m.data {
		m.data[k] = fill()
	}

	return m, nil
}

// Height returns the number of rows. Complexity: O(1).
func (m *Matrix[T]) Height() int { return m.rows }

// Width returns the number of columns. Complexity: O(1).
func (m *Matrix[T]) Width() int { return m.cols }

// Shape packs Height() and Width() into a single call.
// Complexity: O(1).
func (m *Matrix[T]) Shape() (rows, cols int) { return m.rows, m.cols }

// Len returns rows*cols, the length of the backing buffer.
func (m *Matrix[T]) Len() int { return len(m.data) }

// IsEmpty reports whether the matrix holds no elements (either dimension is zero).
func (m *Matrix[T]) IsEmpty() bool { return len(m.data) == 0 }

// offset computes the column-major linear offset of (i, j).
// MAIN DESCRIPTION:
//   - Bounds-check (i, j) and map it to i + j*rows.
//
// Returns:
//   - (offset, true) when 0 ≤ i < rows and 0 ≤ j < cols; (0, false) otherwise.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Single source of truth for the index formula; every accessor goes through it.
func (m *Matrix[T]) offset(i, j int) (int, bool) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, false
	}

	// Column-major offset: i + j*rows.
	return i + j*m.rows, true
}

// coords recovers (i, j) from a linear offset: i = k mod rows, j = k div rows.
// Callers guarantee rows > 0 (a non-empty buffer implies it).
func (m *Matrix[T]) coords(k int) (i, j int) {
	return k % m.rows, k / m.rows
}

// Get returns the element at (i, j).
// MAIN DESCRIPTION:
//   - Safe element read; out-of-range is an ordinary outcome, not an error.
//
// Implementation:
//   - Stage 1: compute offset via offset (bounds check).
//   - Stage 2: load from the flat buffer.
//
// Returns:
//   - (value, true) on success; (zero T, false) for invalid coordinates.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) Get(i, j int) (T, bool) {
	off, ok := m.offset(i, j)
	if !ok {
		var zero T
		return zero, false
	}

	return m.data[off], true
}

// Set returns a matrix identical to m except that (i, j) holds value.
// MAIN DESCRIPTION:
//   - Replace-on-mutate write with a permissive out-of-range policy.
//
// Implementation:
//   - Stage 1: compute offset; out of range returns m itself, untouched.
//   - Stage 2: clone the buffer and write into the clone.
//
// Behavior highlights:
//   - m is never modified; the result owns a fresh buffer.
//   - Out-of-range coordinates are a silent no-op: same shape, same contents.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the copy.
func (m *Matrix[T]) Set(i, j int, value T) *Matrix[T] {
	off, ok := m.offset(i, j)
	if !ok {
		return m
	}
	out := m.Clone()
	out.data[off] = value

	return out
}

// Update applies f to the element at (i, j) and returns the result of Set.
// Out-of-range coordinates (or a nil f) return m unchanged and f is not called.
// Complexity: O(r*c) for the copy.
func (m *Matrix[T]) Update(i, j int, f func(T) T) *Matrix[T] {
	old, ok := m.Get(i, j)
	if !ok || f == nil {
		return m
	}

	return m.Set(i, j, f(old))
}

// Row returns a copy of row i in increasing-column order.
// MAIN DESCRIPTION:
//   - Gather of every element whose linear offset satisfies offset mod rows == i.
//
// Implementation:
//   - Stage 1: validate 0 ≤ i < rows; otherwise (nil, false).
//   - Stage 2: stride through the buffer by rows starting at i.
//
// Complexity:
//   - Time O(c), Space O(c).
func (m *Matrix[T]) Row(i int) ([]T, bool) {
	if i < 0 || i >= m.rows {
		return nil, false
	}
	out := make([]T, 0, m.cols)
	for k := i; k < len(m.data); k += m.rows {
		out = append(out, m.data[k])
	}

	return out, true
}

// Column returns a copy of column j.
// Column-major layout makes this the contiguous range [j*rows, j*rows+rows).
// The returned slice is detached from the matrix buffer.
// Complexity: O(r).
func (m *Matrix[T]) Column(j int) ([]T, bool) {
	if j < 0 || j >= m.cols {
		return nil, false
	}
	lo := j * m.rows
	out := make([]T, m.rows)
	copy(out, m.data[lo:lo+m.rows])

	return out, true
}

// Clone returns a deep copy of the buffer with the same shape.
// Complexity: O(r*c).
func (m *Matrix[T]) Clone() *Matrix[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Matrix[T]{rows: m.rows, cols: m.cols, data: cp}
}
