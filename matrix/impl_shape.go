// SPDX-License-Identifier: MIT

package matrix

import "github.com/cockroachdb/errors"

// SetRows resizes m to n rows, keeping the column count.
// MAIN DESCRIPTION:
//   - Build a fresh n×Cols() buffer, copy the overlapping rows, zero-fill the
//     rest, then swap the new storage in.
//
// Behavior highlights:
//   - Shrinking truncates trailing rows; growing appends zero rows.
//   - On error the receiver is untouched.
//   - Existing Row views are invalidated.
//
// Errors:
//   - ErrInvalidShape when n <= 0 or when m is a moved-from 0×0 matrix
//     (there is no column count to keep).
//
// Complexity:
//   - Time O(n*c), Space O(n*c).
func (m *Matrix) SetRows(n int) error {
	if err := validateShape(n, m.cols); err != nil {
		return errors.Wrapf(err, "Matrix.SetRows(%d)", n)
	}
	next := &Matrix{rows: n, cols: m.cols, data: make([]float64, n*m.cols)}
	keep := min(m.rows, n)
	// Rows are contiguous, so the overlap is a single prefix copy.
	copy(next.data, m.data[:keep*m.cols])
	m.replace(next)

	return nil
}

// SetCols resizes m to n columns, keeping the row count.
// Shrinking truncates trailing columns of every row; growing pads each row
// with zeros. On error the receiver is untouched.
//
// Errors: ErrInvalidShape when n <= 0 or m is moved-from.
// Complexity: O(r*n).
func (m *Matrix) SetCols(n int) error {
	if err := validateShape(m.rows, n); err != nil {
		return errors.Wrapf(err, "Matrix.SetCols(%d)", n)
	}
	next := &Matrix{rows: m.rows, cols: n, data: make([]float64, m.rows*n)}
	keep := min(m.cols, n)
	var i int
	for i = 0; i < m.rows; i++ {
		copy(next.data[i*n:i*n+keep], m.data[i*m.cols:i*m.cols+keep])
	}
	m.replace(next)

	return nil
}
