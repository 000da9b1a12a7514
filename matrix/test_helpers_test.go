// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the column-major container.
//   • Keep construction boilerplate (error checks) out of the test bodies.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/colmat/matrix"
)

// mustNested builds a matrix from columns or fails the test.
func mustNested[T any](tb testing.TB, cols [][]T) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.FromNested(cols)
	require.NoError(tb, err)

	return m
}

// mustRepeat builds a filled rows×cols matrix or fails the test.
func mustRepeat[T any](tb testing.TB, rows, cols int, v T) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.Repeat(rows, cols, v)
	require.NoError(tb, err)

	return m
}

// seq returns a rows×cols int matrix whose buffer is 0..rows*cols-1 in
// linear order, so element (i, j) equals i + j*rows.
func seq(tb testing.TB, rows, cols int) *matrix.Matrix[int] {
	tb.Helper()
	m := mustRepeat(tb, rows, cols, 0)

	return matrix.IndexedMap(m, func(i, j, _ int) int { return i + j*rows })
}

// randomInts fills a rows×cols matrix deterministically from seed.
func randomInts(tb testing.TB, rows, cols int, seed int64) *matrix.Matrix[int] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.RepeatFunc(rows, cols, func() int { return rng.Intn(100) })
	require.NoError(tb, err)

	return m
}

// requireShapeInvariant asserts len(buffer) == rows*cols.
func requireShapeInvariant[T any](tb testing.TB, m *matrix.Matrix[T]) {
	tb.Helper()
	r, c := m.Shape()
	require.Len(tb, matrix.RawData_TestOnly(m), r*c)
	require.Equal(tb, r*c, m.Len())
}
