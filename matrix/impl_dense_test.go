// Package matrix_test contains unit tests for construction and element access
// of the column-major Matrix.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/colmat/matrix"
)

// TestEmpty verifies the 0×0 constructor.
func TestEmpty(t *testing.T) {
	m := matrix.Empty[string]()
	r, c := m.Shape()
	require.Equal(t, 0, r)
	require.Equal(t, 0, c)
	require.True(t, m.IsEmpty())
	requireShapeInvariant(t, m)

	_, ok := m.Get(0, 0)
	require.False(t, ok)
}

// TestZeroValueIsEmpty ensures the zero Matrix behaves like Empty.
func TestZeroValueIsEmpty(t *testing.T) {
	var m matrix.Matrix[int]
	require.Equal(t, 0, m.Height())
	require.Equal(t, 0, m.Width())
	require.Empty(t, m.Filter(func(int) bool { return true }))
	require.True(t, matrix.Equal(&m, matrix.Empty[int]()))
}

// TestRepeatShapes covers regular and degenerate shapes.
func TestRepeatShapes(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"2x3", 2, 3},
		{"1x1", 1, 1},
		{"zero rows", 0, 4},
		{"zero cols", 5, 0},
		{"0x0", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := mustRepeat(t, tc.rows, tc.cols, 7)
			require.Equal(t, tc.rows, m.Height())
			require.Equal(t, tc.cols, m.Width())
			requireShapeInvariant(t, m)
			for _, v := range matrix.RawData_TestOnly(m) {
				require.Equal(t, 7, v)
			}
		})
	}
}

// TestRepeatNegative ensures negative dimensions are rejected.
func TestRepeatNegative(t *testing.T) {
	_, err := matrix.Repeat(-1, 2, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.Repeat(2, -1, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.RepeatFunc(-3, 1, func() int { return 0 })
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRepeatFuncIndependentCells ensures each cell gets its own referent.
func TestRepeatFuncIndependentCells(t *testing.T) {
	m, err := matrix.RepeatFunc(2, 2, func() []int { return []int{0} })
	require.NoError(t, err)

	a, _ := m.Get(0, 0)
	b, _ := m.Get(1, 1)
	a[0] = 42
	require.Equal(t, 0, b[0])

	_, err = matrix.RepeatFunc[int](1, 1, nil)
	require.ErrorIs(t, err, matrix.ErrNilFunc)
}

// TestOffsetFormula checks the column-major offset and its inverse.
func TestOffsetFormula(t *testing.T) {
	m := mustRepeat(t, 3, 4, 0)
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			off, ok := matrix.OffsetOf_TestOnly(m, i, j)
			require.True(t, ok)
			require.Equal(t, i+j*3, off)

			ri, rj := matrix.CoordsOf_TestOnly(m, off)
			require.Equal(t, i, ri)
			require.Equal(t, j, rj)
		}
	}

	_, ok := matrix.OffsetOf_TestOnly(m, 3, 0)
	require.False(t, ok)
	_, ok = matrix.OffsetOf_TestOnly(m, 0, -1)
	require.False(t, ok)
}

// TestGetOutOfRange covers every out-of-range direction.
func TestGetOutOfRange(t *testing.T) {
	m := mustRepeat(t, 1, 1, 5)

	v, ok := m.Get(0, 0)
	require.True(t, ok)
	require.Equal(t, 5, v)

	for _, ij := range [][2]int{{1, 2}, {-1, 0}, {0, -1}, {1, 0}, {0, 1}} {
		v, ok = m.Get(ij[0], ij[1])
		assert.False(t, ok, "Get(%d,%d)", ij[0], ij[1])
		assert.Zero(t, v)
	}
}

// TestSetGetRoundTrip validates get(i,j,set(i,j,v,m)) == v for all in-range cells.
func TestSetGetRoundTrip(t *testing.T) {
	m := seq(t, 3, 2)
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			got, ok := m.Set(i, j, -1).Get(i, j)
			require.True(t, ok)
			require.Equal(t, -1, got)
		}
	}
}

// TestSetDoesNotMutateReceiver ensures replace-on-mutate semantics.
func TestSetDoesNotMutateReceiver(t *testing.T) {
	m := seq(t, 2, 2)
	before := m.Clone()

	n := m.Set(1, 1, 99)
	require.True(t, matrix.Equal(before, m))

	v, _ := n.Get(1, 1)
	require.Equal(t, 99, v)
	// Only the target cell differs.
	diff := 0
	n.Do(func(i, j, v int) bool {
		if old, _ := m.Get(i, j); old != v {
			diff++
		}
		return true
	})
	require.Equal(t, 1, diff)
}

// TestSetOutOfRangeNoOp asserts no shape or content change for invalid writes.
func TestSetOutOfRangeNoOp(t *testing.T) {
	m := seq(t, 2, 3)
	for _, ij := range [][2]int{{2, 0}, {0, 3}, {-1, -1}, {5, 5}} {
		n := m.Set(ij[0], ij[1], 100)
		require.Equal(t, 2, n.Height())
		require.Equal(t, 3, n.Width())
		require.True(t, matrix.Equal(m, n))
		requireShapeInvariant(t, n)
	}
}

// TestUpdate covers in-range and out-of-range updates.
func TestUpdate(t *testing.T) {
	m := seq(t, 2, 2) // buffer 0,1,2,3
	inc := func(v int) int { return v + 10 }

	n := m.Update(1, 1, inc)
	v, _ := n.Get(1, 1)
	require.Equal(t, 13, v)

	called := false
	same := m.Update(2, 0, func(v int) int { called = true; return v })
	require.False(t, called)
	require.True(t, matrix.Equal(m, same))

	require.True(t, matrix.Equal(m, m.Update(0, 0, nil)))
}

// TestRowColumn verifies gather of rows and contiguous read of columns.
func TestRowColumn(t *testing.T) {
	m := mustNested(t, [][]int{{1, 2, 3}, {4, 5, 6}}) // 3×2, columns (1,2,3) and (4,5,6)

	row, ok := m.Row(1)
	require.True(t, ok)
	require.Equal(t, []int{2, 5}, row)

	col, ok := m.Column(1)
	require.True(t, ok)
	require.Equal(t, []int{4, 5, 6}, col)

	_, ok = m.Row(3)
	require.False(t, ok)
	_, ok = m.Row(-1)
	require.False(t, ok)
	_, ok = m.Column(2)
	require.False(t, ok)
}

// TestColumnDetached ensures a returned column never aliases the buffer.
func TestColumnDetached(t *testing.T) {
	m := mustNested(t, [][]int{{1, 2}})
	col, _ := m.Column(0)
	col[0] = 100

	v, _ := m.Get(0, 0)
	require.Equal(t, 1, v)
}

// TestCloneIndependence ensures Clone returns a deep copy.
func TestCloneIndependence(t *testing.T) {
	m := seq(t, 2, 2)
	c := m.Clone()
	matrix.RawData_TestOnly(c)[0] = 42

	v, _ := m.Get(0, 0)
	require.Equal(t, 0, v)
}
