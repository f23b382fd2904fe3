// SPDX-License-Identifier: MIT

// Package matrix: the Matrix value type and its documented constants.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

// DefaultRows and DefaultCols define the shape produced by NewDefault.
// The fixed 16×16 shape is kept for compatibility with the classic
// "build your own matrix" exercise; it is NOT an "empty matrix" sentinel.
const (
	DefaultRows = 16
	DefaultCols = 16
)

// Matrix is a dense, row-major matrix of float64 values.
//   - rows, cols hold the shape; both are >= 1 for any constructed matrix.
//   - data is a flat buffer of length rows*cols; element (i, j) lives at i*cols + j.
//
// Each Matrix exclusively owns its buffer: Clone and CopyFrom deep-copy,
// Move and MoveFrom transfer the buffer and leave the source as a 0×0 matrix.
// The zero value Matrix{} is that same 0×0 state: safe to reshape via
// CopyFrom/MoveFrom, but every index is out of range.
//
// A Matrix is not safe for concurrent mutation; concurrent readers need
// external synchronization.
type Matrix struct {
	rows, cols int       // shape (0,0 only when moved-from or zero value)
	data       []float64 // row-major storage, len == rows*cols
}
