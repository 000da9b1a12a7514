// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the index arithmetic.
//
// Purpose:
//   - Expose the unexported offset/coords helpers and the raw buffer to
//     matrix_test ONLY, so invariants can be checked without widening the API.
//   - Lives in a _test.go file: invisible in production builds.

// OffsetOf_TestOnly forwards to the private offset helper.
func OffsetOf_TestOnly[T any](m *Matrix[T], i, j int) (int, bool) {
	return m.offset(i, j)
}

// CoordsOf_TestOnly forwards to the private coords helper.
func CoordsOf_TestOnly[T any](m *Matrix[T], k int) (int, int) {
	return m.coords(k)
}

// RawData_TestOnly returns the backing buffer itself (NOT a copy).
func RawData_TestOnly[T any](m *Matrix[T]) []T {
	return m.data
}
