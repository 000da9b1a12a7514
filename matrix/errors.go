// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Fallible operations return these sentinels (optionally wrapped with
// call-site context) and tests check them via errors.Is. No operation panics on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping. Public functions wrap with matrixErrorf("<Func>", ErrX);
// callers still match with errors.Is.
//
// Out-of-range coordinates are NOT errors: Get/Row/Column report them through
// the comma-ok bool, Set/Update return the receiver unchanged.

var (
	// ErrShapeMismatch indicates operand shapes incompatible with the requested
	// combinator: ragged nested input, unequal heights (ConcatHorizontal),
	// unequal widths (ConcatVertical) or unequal sizes (Map2, Equal-like zips).
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrInvalidDimensions indicates that requested dimensions are negative.
	// Zero is legal and yields an empty buffer.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrNilMatrix indicates that a nil *Matrix argument was passed to a
	// fallible package function.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilFunc indicates that a required callback (fill, mapper, predicate) is nil.
	ErrNilFunc = errors.New("matrix: nil function")
)

// matrixErrorf wraps a sentinel with the public function tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("matrix.%s: %w", tag, err)
}

// shapeErrorf wraps ErrShapeMismatch with both operand shapes for diagnostics.
func shapeErrorf(tag string, ar, ac, br, bc int) error {
	return fmt.Errorf("matrix.%s: %dx%d vs %dx%d: %w", tag, ar, ac, br, bc, ErrShapeMismatch)
}
