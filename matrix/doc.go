// SPDX-License-Identifier: MIT

// Package matrix implements a small dense matrix value type.
//
// A *Matrix owns a contiguous row-major []float64 buffer and offers:
//
//   - Construction: New(rows, cols), NewDefault() (fixed 16×16 zeros),
//     NewFromRows, NewFromData, NewIdentity.
//   - Lifecycle: Clone/CopyFrom (deep copy) and Move/MoveFrom (O(1) buffer
//     transfer that leaves the source as an empty 0×0 matrix).
//   - Shape: Rows, Cols, SetRows, SetCols (truncate or zero-pad).
//   - Access: At, Set, Row (a writable view of one row).
//   - Arithmetic: Add, Sub, MulScalar, ScalarMul, Mul, plus in-place
//     SumMatrix, SubMatrix, MulNumber, MulMatrix.
//   - Comparison: Equal with absolute tolerance 1e-7.
//   - Algebra: Transpose, Determinant, CalcComplements, Adjugate, InverseMatrix.
//
// Every precondition violation is reported as a wrapped sentinel
// (ErrInvalidShape, ErrIndexOutOfRange, ErrDimensionMismatch, ErrNotSquare,
// ErrSingularMatrix, ErrNilMatrix); match them with errors.Is. A failed call
// never mutates its receiver.
//
// The determinant and cofactor routines use recursive cofactor expansion,
// which is O(n!) and meant for small matrices only.
//
// A Matrix is a plain value with no internal locking; share it across
// goroutines only under external synchronization.
package matrix
