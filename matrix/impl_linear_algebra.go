// SPDX-License-Identifier: MIT
// Package matrix: matrix product, transpose and the cofactor family
// (determinant, complements, inverse).
//
// Purpose:
//   - Classical textbook algorithms with fixed loop orders, so results are
//     bit-for-bit reproducible across runs and platforms.
//
// Notes:
//   - Determinant and complements use recursive first-row cofactor expansion:
//     O(n!) time and O(n) stack depth. That is acceptable only for small n and
//     is kept on purpose; an LU-based determinant would change rounding.
//   - No stack-depth guard is applied.

package matrix

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Mul returns the product a × b with shape (a.Rows() × b.Cols()).
// Implementation:
//   - Stage 1: validate non-nil operands and a.Cols() == b.Rows().
//   - Stage 2: i-outer, j-middle, k-inner accumulation into the zeroed result.
//
// Behavior highlights:
//   - No zero-skipping, no blocking; the accumulation order is fixed so that
//     every implementation following it produces identical floating-point sums.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (inner dimensions differ).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return mulDense(a, b), nil
}

// mulDense is the unchecked kernel behind Mul and MulMatrix.
func mulDense(a, b *Matrix) *Matrix {
	rows, inner, cols := a.rows, a.cols, b.cols
	res := &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
	var (
		i, j, k    int
		rowA, rowR int
	)
	for i = 0; i < rows; i++ {
		rowA = i * inner
		rowR = i * cols
		for j = 0; j < cols; j++ {
			for k = 0; k < inner; k++ {
				res.data[rowR+j] += a.data[rowA+k] * b.data[k*cols+j]
			}
		}
	}

	return res
}

// MulMatrix replaces m with m × other.
// The product is computed into fresh storage which then replaces m's buffer
// (the shape may change from r×n to r×c). On error m is unchanged.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Matrix) MulMatrix(other *Matrix) error {
	if err := ValidateMulCompatible(m, other); err != nil {
		return matrixErrorf(opMulMatrix, err)
	}
	m.replace(mulDense(m, other))

	return nil
}

// Transpose returns a new (Cols() × Rows()) matrix with element (j,i) equal
// to m(i,j). Any shape is accepted; m is not mutated.
// Complexity: O(r*c).
func (m *Matrix) Transpose() *Matrix {
	res := &Matrix{rows: m.cols, cols: m.rows, data: make([]float64, len(m.data))}
	var i, j, base int
	for i = 0; i < m.rows; i++ {
		base = i * m.cols
		for j = 0; j < m.cols; j++ {
			res.data[j*m.rows+i] = m.data[base+j]
		}
	}

	return res
}

// Determinant returns det(m) by first-row cofactor expansion.
// MAIN DESCRIPTION:
//   - 1×1: the sole element.
//   - n×n: Σ_j (-1)^j · m(0,j) · det(minor(0,j)), sign starting at +1.
//
// Errors:
//   - ErrNotSquare when Rows() != Cols(); ErrInvalidShape on a moved-from matrix.
//
// Complexity:
//   - Time O(n!), Space O(n²) across the recursion.
func (m *Matrix) Determinant() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return determinant(m.data, m.rows), nil
}

// CalcComplements returns the cofactor matrix C with
// C(i,j) = (-1)^(i+j) · det(minor(i,j)).
//
// The 1×1 case is special-cased to [[1]] regardless of the element value,
// which keeps InverseMatrix on 1×1 input equal to 1/a.
// m is never mutated.
//
// Errors: ErrNotSquare, ErrInvalidShape (moved-from).
// Complexity: O(n² · (n-1)!).
func (m *Matrix) CalcComplements() (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opComplements, err)
	}

	return complements(m.data, m.rows), nil
}

// InverseMatrix returns m⁻¹ = transpose(CalcComplements()) / det.
// Implementation:
//   - Stage 1: ValidateSquare (ErrNotSquare).
//   - Stage 2: compute det once; |det| < threshold ⇒ ErrSingularMatrix.
//   - Stage 3: adjugate divided elementwise by det.
//
// The threshold defaults to DefaultSingularThreshold and can be changed with
// WithSingularThreshold.
//
// Errors: ErrNotSquare, ErrSingularMatrix, ErrInvalidShape (moved-from).
func (m *Matrix) InverseMatrix(opts ...Option) (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	threshold := gatherOptions(opts...).singularThreshold
	n := m.rows
	det := determinant(m.data, n)
	if math.Abs(det) < threshold {
		return nil, errors.Wrapf(ErrSingularMatrix, "%s: |det|=%g < %g", opInverse, math.Abs(det), threshold)
	}

	adj := complements(m.data, n).Transpose()
	for idx := range adj.data {
		adj.data[idx] /= det
	}

	return adj, nil
}

// determinant is the recursive kernel over an n×n row-major buffer.
// The minor buffer is reused across iterations: each child call finishes
// before the buffer is refilled.
func determinant(data []float64, n int) float64 {
	if n == 1 {
		return data[0]
	}
	minor := make([]float64, (n-1)*(n-1))
	det, sign := 0.0, 1.0
	for j := 0; j < n; j++ {
		fillMinor(minor, data, n, 0, j)
		det += sign * data[j] * determinant(minor, n-1)
		sign = -sign
	}

	return det
}

// complements builds the cofactor matrix of an n×n row-major buffer.
func complements(data []float64, n int) *Matrix {
	res := &Matrix{rows: n, cols: n, data: make([]float64, n*n)}
	if n == 1 {
		res.data[0] = 1

		return res
	}
	minor := make([]float64, (n-1)*(n-1))
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			fillMinor(minor, data, n, i, j)
			sign := 1.0
			if (i+j)%2 != 0 {
				sign = -1.0
			}
			res.data[i*n+j] = sign * determinant(minor, n-1)
		}
	}

	return res
}

// fillMinor writes into dst the (n-1)×(n-1) submatrix of src obtained by
// deleting skipRow and skipCol. len(dst) must be (n-1)*(n-1).
func fillMinor(dst, src []float64, n, skipRow, skipCol int) {
	k := 0
	var i, j int
	for i = 0; i < n; i++ {
		if i == skipRow {
			continue
		}
		for j = 0; j < n; j++ {
			if j == skipCol {
				continue
			}
			dst[k] = src[i*n+j]
			k++
		}
	}
}

// Minor returns the (n-1)×(n-1) matrix obtained by deleting row i and
// column j of the square matrix m.
//
// Errors: ErrNotSquare, ErrInvalidShape (1×1 has no minor, or moved-from),
// ErrIndexOutOfRange.
func (m *Matrix) Minor(i, j int) (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, errors.Wrap(err, "Minor")
	}
	if _, err := m.indexOf(i, j); err != nil {
		return nil, denseErrorf("Minor", i, j, err)
	}
	n := m.rows
	if n == 1 {
		return nil, errors.Wrap(ErrInvalidShape, "Minor: 1×1 matrix has no minor")
	}
	res := &Matrix{rows: n - 1, cols: n - 1, data: make([]float64, (n-1)*(n-1))}
	fillMinor(res.data, m.data, n, i, j)

	return res, nil
}
