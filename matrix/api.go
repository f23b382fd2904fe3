// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Function-style entry points for the method-based kernels, so callers can
//     write Transpose(m) or Inverse(m) and get a nil-safe error instead of a panic.
//   - Each facade delegates to the canonical method; no logic is duplicated.

package matrix

// CloneMatrix returns a deep copy of m, or nil for a nil m.
func CloneMatrix(m *Matrix) *Matrix {
	if m == nil {
		return nil
	}

	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Errors: ErrNilMatrix, ErrInvalidShape (moved-from m).
func ZerosLike(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return New(m.rows, m.cols)
}

// IdentityLike returns I with dimension Rows(m); requires a square m.
func IdentityLike(m *Matrix) (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.rows)
}

// Transpose is the nil-safe facade over (*Matrix).Transpose.
func Transpose(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return m.Transpose(), nil
}

// Determinant is the facade over (*Matrix).Determinant.
func Determinant(m *Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return m.Determinant()
}

// CalcComplements is the facade over (*Matrix).CalcComplements.
func CalcComplements(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opComplements, err)
	}

	return m.CalcComplements()
}

// Adjugate returns transpose(CalcComplements(m)), the classical adjoint.
// Errors: ErrNilMatrix, ErrNotSquare.
func Adjugate(m *Matrix) (*Matrix, error) {
	c, err := CalcComplements(m)
	if err != nil {
		return nil, matrixErrorf("Adjugate", err)
	}

	return c.Transpose(), nil
}

// Inverse is the facade over (*Matrix).InverseMatrix.
func Inverse(m *Matrix, opts ...Option) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return m.InverseMatrix(opts...)
}
