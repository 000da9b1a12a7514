// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for the operand checks shared
//    by the combinators (nil, equal height, equal width, equal size).
//  - Return wrapped sentinels so every call site reports the same way.
//
// Note:
//  - Composite checks follow a fixed sequence: NotNil → Shape.
//  - All checks are O(1) and allocate only on failure.

package matrix

// validatePair checks both operands for nil and then applies the shape rule.
// sameRows/sameCols select which dimensions must agree.
func validatePair[T, U any](tag string, a *Matrix[T], b *Matrix[U], sameRows, sameCols bool) error {
	if a == nil || b == nil {
		return matrixErrorf(tag, ErrNilMatrix)
	}
	if (sameRows && a.rows != b.rows) || (sameCols && a.cols != b.cols) {
		return shapeErrorf(tag, a.rows, a.cols, b.rows, b.cols)
	}

	return nil
}

// ValidateSameHeight reports ErrShapeMismatch unless a and b have equal row counts.
// This is the precondition of ConcatHorizontal.
func ValidateSameHeight[T, U any](a *Matrix[T], b *Matrix[U]) error {
	return validatePair("ValidateSameHeight", a, b, true, false)
}

// ValidateSameWidth reports ErrShapeMismatch unless a and b have equal column counts.
// This is the precondition of ConcatVertical.
func ValidateSameWidth[T, U any](a *Matrix[T], b *Matrix[U]) error {
	return validatePair("ValidateSameWidth", a, b, false, true)
}

// ValidateSameShape reports ErrShapeMismatch unless a and b agree on both dimensions.
// This is the precondition of Map2.
func ValidateSameShape[T, U any](a *Matrix[T], b *Matrix[U]) error {
	return validatePair("ValidateSameShape", a, b, true, true)
}
