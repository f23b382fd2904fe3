// SPDX-License-Identifier: MIT

// Package lvmatrix is a small dense-matrix toolkit built for learning:
// a single matrix value type with the classical textbook algorithms.
//
// What is inside?
//
//	matrix/     — the Matrix type: construction, resizing, element access,
//	              tolerant equality, sum/difference, scalar and matrix products,
//	              transpose, determinant, cofactor matrix, adjugate, inverse
//	converters/ — deep-copy adapters to and from gonum's mat.Dense
//	examples/   — a runnable walkthrough of the API
//
// Why this shape?
//
//   - Beginner-friendly: one type, explicit error returns, no hidden state.
//   - Deterministic: fixed loop orders, so results are reproducible bit for bit.
//   - Honest about cost: determinant and inverse use recursive cofactor
//     expansion (O(n!)), which is perfect for 2×2…7×7 and nothing larger.
//
// Quick example:
//
//	m, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//	inv, err := m.InverseMatrix()
//	if errors.Is(err, matrix.ErrSingularMatrix) {
//		// handle singular input
//	}
//	fmt.Print(inv) // [-2, 1]\n[1.5, -0.5]\n
//
// See the matrix package documentation for the full API and error taxonomy.
package lvmatrix
