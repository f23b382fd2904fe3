// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise kernels: sum, difference, scalar scaling and tolerant equality.
//   - Every public entry point comes in two flavors: a pure function returning a
//     fresh Matrix, and an in-place method mutating the receiver.
//
// Determinism & Performance:
//   - Single flat loop 0..n-1 over the row-major buffer.
//   - In-place forms validate first, so a failed call never mutates the receiver.

package matrix

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opSumMatrix   = "SumMatrix"
	opSubMatrix   = "SubMatrix"
	opMulNumber   = "MulNumber"
	opMulScalar   = "MulScalar"
	opMul         = "Mul"
	opMulMatrix   = "MulMatrix"
	opTranspose   = "Transpose"
	opDeterminant = "Determinant"
	opComplements = "CalcComplements"
	opInverse     = "InverseMatrix"
)

// matrixErrorf wraps err with an operation tag, keeping errors.Is intact.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return errors.Wrap(err, tag)
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1} into a fresh matrix.
// Operands are never mutated.
func addSub(a, b *Matrix, sign float64, opTag string) (*Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := &Matrix{rows: a.rows, cols: a.cols, data: make([]float64, len(a.data))}
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add returns the element-wise sum a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ).
// Complexity: O(r*c).
func Add(a, b *Matrix) (*Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub returns the element-wise difference a - b.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ).
// Complexity: O(r*c).
func Sub(a, b *Matrix) (*Matrix, error) { return addSub(a, b, -1, opSub) }

// SumMatrix adds other into m in place (m += other).
// On ErrDimensionMismatch m is unchanged.
func (m *Matrix) SumMatrix(other *Matrix) error {
	if err := ValidateSameShape(m, other); err != nil {
		return matrixErrorf(opSumMatrix, err)
	}
	for idx, v := range other.data {
		m.data[idx] += v
	}

	return nil
}

// SubMatrix subtracts other from m in place (m -= other).
// On ErrDimensionMismatch m is unchanged.
func (m *Matrix) SubMatrix(other *Matrix) error {
	if err := ValidateSameShape(m, other); err != nil {
		return matrixErrorf(opSubMatrix, err)
	}
	for idx, v := range other.data {
		m.data[idx] -= v
	}

	return nil
}

// MulScalar returns m * k as a fresh matrix. It always succeeds for a
// non-nil m; NaN/Inf in k propagate.
// Errors: ErrNilMatrix.
func MulScalar(m *Matrix, k float64) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulScalar, err)
	}
	res := &Matrix{rows: m.rows, cols: m.cols, data: make([]float64, len(m.data))}
	for idx, v := range m.data {
		res.data[idx] = v * k
	}

	return res, nil
}

// ScalarMul is the left-operand form k * m; identical to MulScalar(m, k).
func ScalarMul(k float64, m *Matrix) (*Matrix, error) { return MulScalar(m, k) }

// MulNumber scales every element of m by k in place.
// Errors: ErrNilMatrix.
func (m *Matrix) MulNumber(k float64) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opMulNumber, err)
	}
	for idx := range m.data {
		m.data[idx] *= k
	}

	return nil
}

// Equal reports whether a and b have the same shape and every pair of
// elements satisfies |a_ij - b_ij| <= eps (DefaultEpsilon unless WithEpsilon).
//
// Behavior highlights:
//   - Absolute tolerance only; no relative scaling for large magnitudes.
//   - A NaN element never compares equal (the <= test fails).
//   - Two nil matrices are equal; nil vs non-nil is not.
//
// Complexity: O(r*c), early exit on first mismatch.
func Equal(a, b *Matrix, opts ...Option) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	eps := gatherOptions(opts...).eps
	for idx, av := range a.data {
		if !(math.Abs(av-b.data[idx]) <= eps) {
			return false
		}
	}

	return true
}

// Equal is the method form of the package-level Equal.
func (m *Matrix) Equal(other *Matrix, opts ...Option) bool { return Equal(m, other, opts...) }
