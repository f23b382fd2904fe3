// SPDX-License-Identifier: MIT

// Package matrix - row-major storage, lifecycle & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Model exclusive buffer ownership: deep copies (Clone/CopyFrom) and O(1)
//     ownership transfer (Move/MoveFrom) that empties the source.
//
// Complexity quicksheet:
//   - New/NewDefault: O(r*c) zero-init; At/Set/Row: O(1); Clone/CopyFrom: O(r*c);
//     Move/MoveFrom: O(1).

package matrix

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxFromRows = "NewFromRows"
	ctxFromData = "NewFromData"
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxRow      = "Row"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// denseErrorf wraps a sentinel with a uniform Matrix context and callsite indices.
// The rendered message reads "Matrix.<method>(row,col): <sentinel>".
func denseErrorf(method string, row, col int, err error) error {
	return errors.Wrapf(err, "Matrix.%s(%d,%d)", method, row, col)
}

// New creates a rows×cols zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidShape.
//   - Stage 2: allocate a zero-filled contiguous buffer.
//
// Errors:
//   - ErrInvalidShape (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int) (*Matrix, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, denseErrorf(ctxNew, rows, cols, err)
	}

	// make() zero-fills deterministically.
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// NewDefault returns the fixed DefaultRows×DefaultCols (16×16) zero matrix.
// It never fails.
func NewDefault() *Matrix {
	return &Matrix{
		rows: DefaultRows,
		cols: DefaultCols,
		data: make([]float64, DefaultRows*DefaultCols),
	}
}

// NewFromRows builds a matrix from a rectangular row literal, copying values.
// Every row must have the same non-zero length; otherwise ErrInvalidShape.
// Complexity: O(r*c).
func NewFromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, errors.Wrapf(ErrInvalidShape, "Matrix.%s: no rows", ctxFromRows)
	}
	cols := len(rows[0])
	m, err := New(len(rows), cols)
	if err != nil {
		return nil, errors.Wrapf(err, "Matrix.%s", ctxFromRows)
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, errors.Wrapf(ErrInvalidShape, "Matrix.%s: row %d has %d values, want %d",
				ctxFromRows, i, len(row), cols)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// NewFromData builds a rows×cols matrix from a row-major slice (copied).
// len(data) must equal rows*cols.
func NewFromData(rows, cols int, data []float64) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, errors.Wrapf(err, "Matrix.%s", ctxFromData)
	}
	if len(data) != rows*cols {
		return nil, errors.Wrapf(ErrInvalidShape, "Matrix.%s: got %d values, want %d",
			ctxFromData, len(data), rows*cols)
	}
	copy(m.data, data)

	return m, nil
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidShape when n <= 0.
func NewIdentity(n int) (*Matrix, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix) Shape() (rows, cols int) { return m.rows, m.cols }

// indexOf bounds-checks (row, col) and returns the row-major offset.
// Both bounds are enforced: negative indices are ErrIndexOutOfRange too.
func (m *Matrix) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.rows {
		return 0, ErrIndexOutOfRange
	}
	if col < 0 || col >= m.cols {
		return 0, ErrIndexOutOfRange
	}

	return row*m.cols + col, nil
}

// At returns the value at (row, col).
// MAIN DESCRIPTION:
//   - Safe element read; never panics on bad coordinates.
//
// Errors:
//   - ErrIndexOutOfRange when row ∉ [0,Rows()) or col ∉ [0,Cols()).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// Errors: ErrIndexOutOfRange on invalid coordinates; the matrix is untouched.
func (m *Matrix) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a view of row i: a slice that aliases the matrix buffer, so
// writes through it mutate the matrix. Its capacity is clipped to the row,
// so append on the view never spills into the next row.
//
// The view is invalidated by SetRows, SetCols, MulMatrix, CopyFrom and the
// Move family, which all replace the underlying buffer.
//
// Errors: ErrIndexOutOfRange when i ∉ [0,Rows()).
func (m *Matrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.rows {
		return nil, denseErrorf(ctxRow, i, 0, ErrIndexOutOfRange)
	}
	lo, hi := i*m.cols, (i+1)*m.cols

	return m.data[lo:hi:hi], nil
}

// Values returns a row-major copy of all elements.
// Complexity: O(r*c).
func (m *Matrix) Values() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy; mutating either matrix never affects the other.
// Complexity: O(r*c) time and memory.
func (m *Matrix) Clone() *Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Matrix{rows: m.rows, cols: m.cols, data: cp}
}

// CopyFrom makes m a deep copy of src (copy-assignment).
// Self-copy is a no-op. A nil src yields ErrNilMatrix and leaves m untouched.
func (m *Matrix) CopyFrom(src *Matrix) error {
	if err := ValidateNotNil(src); err != nil {
		return errors.Wrap(err, "Matrix.CopyFrom")
	}
	if m == src {
		return nil
	}
	cp := make([]float64, len(src.data))
	copy(cp, src.data)
	m.rows, m.cols, m.data = src.rows, src.cols, cp

	return nil
}

// Move transfers m's buffer to a new Matrix in O(1).
// Afterwards m is a 0×0 matrix with no buffer: safe to drop or to refill via
// CopyFrom/MoveFrom, but every index on it is out of range.
func (m *Matrix) Move() *Matrix {
	out := &Matrix{rows: m.rows, cols: m.cols, data: m.data}
	m.reset()

	return out
}

// MoveFrom takes ownership of src's buffer in O(1) (move-assignment).
// m's previous buffer is released; src becomes 0×0. Self-move is a no-op.
func (m *Matrix) MoveFrom(src *Matrix) error {
	if err := ValidateNotNil(src); err != nil {
		return errors.Wrap(err, "Matrix.MoveFrom")
	}
	if m == src {
		return nil
	}
	m.rows, m.cols, m.data = src.rows, src.cols, src.data
	src.reset()

	return nil
}

// reset puts m into the moved-from 0×0 state.
func (m *Matrix) reset() {
	m.rows, m.cols, m.data = 0, 0, nil
}

// replace swaps in fresh storage built by a kernel. next is consumed.
func (m *Matrix) replace(next *Matrix) {
	m.rows, m.cols, m.data = next.rows, next.cols, next.data
}

// String renders one bracketed line per row, values formatted with %g.
// Intended for debugging and examples, not hot paths.
func (m *Matrix) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.rows; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.cols
		for j = 0; j < m.cols; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
