// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every operation returns
// one of these (possibly wrapped with call-site context) and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.

package matrix

import "github.com/cockroachdb/errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Sentinels are
// wrapped at the detection site with errors.Wrapf("Matrix.<Op>(...)"), so the
// rendered message carries coordinates while errors.Is still matches.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape/index -> dimension mismatch -> not square -> singular.

var (
	// ErrInvalidShape is returned when a requested row or column count is <= 0,
	// on construction as well as on SetRows/SetCols, or when a literal is ragged.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrIndexOutOfRange indicates that a row or column index is outside [0, dim).
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add/Sub
	// with different shapes, or Mul where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotSquare signals that Determinant, CalcComplements or InverseMatrix
	// was requested on a matrix with Rows() != Cols().
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrSingularMatrix is returned by InverseMatrix when |det| is below the
	// singularity threshold (DefaultSingularThreshold unless overridden).
	ErrSingularMatrix = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Matrix was passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
