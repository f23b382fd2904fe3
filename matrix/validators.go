// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for precondition checks.
//  - Keep kernels minimal by delegating nil/shape/square checks here.
//  - Return the sentinel tagged with the validator name so call sites can
//    wrap again with their own operation tag.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on the success path.

package matrix

import (
	"math"

	"github.com/cockroachdb/errors"
)

// validatorErrorf tags a sentinel with the validator name.
func validatorErrorf(tag string, err error) error {
	return errors.Wrap(err, tag)
}

// validateShape rejects non-positive dimensions and shapes whose element
// count rows*cols does not fit in an int.
func validateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrInvalidShape
	}
	if rows > math.MaxInt/cols {
		return errors.Wrapf(ErrInvalidShape, "%d×%d overflows element count", rows, cols)
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape – Composite: NotNil(a) → NotNil(b) → equal shapes.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols() == b.Rows(), inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.cols != b.rows {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare – Composite: NotNil → Rows == Cols → non-empty.
//
// Errors: ErrNilMatrix, ErrNotSquare, ErrInvalidShape (moved-from 0×0).
// Complexity: O(1).
func ValidateSquare(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.rows != m.cols {
		return validatorErrorf("ValidateSquare", ErrNotSquare)
	}
	if m.rows == 0 {
		return validatorErrorf("ValidateSquare", ErrInvalidShape)
	}

	return nil
}
