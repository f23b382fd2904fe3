// SPDX-License-Identifier: MIT

package converters

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// ToGonum copies m into a new *mat.Dense of the same shape.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil m.
//   - matrix.ErrInvalidShape for a moved-from 0×0 m (gonum rejects empty dense matrices).
func ToGonum(m *matrix.Matrix) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, errors.Wrap(err, "ToGonum")
	}
	r, c := m.Shape()
	if r == 0 || c == 0 {
		return nil, errors.Wrapf(matrix.ErrInvalidShape, "ToGonum: %d×%d", r, c)
	}

	// Values returns a fresh copy, so the Dense may own it directly.
	return mat.NewDense(r, c, m.Values()), nil
}

// FromGonum copies any gonum matrix into a new *matrix.Matrix.
// Elements are read through mat.Matrix.At, so transposed or view types work too.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil src.
//   - matrix.ErrInvalidShape for an empty (zero-value) gonum Dense.
func FromGonum(src mat.Matrix) (*matrix.Matrix, error) {
	if src == nil {
		return nil, errors.Wrap(matrix.ErrNilMatrix, "FromGonum")
	}
	if d, ok := src.(*mat.Dense); ok {
		if d == nil {
			return nil, errors.Wrap(matrix.ErrNilMatrix, "FromGonum")
		}
		if d.IsEmpty() {
			return nil, errors.Wrap(matrix.ErrInvalidShape, "FromGonum: empty Dense")
		}
	}
	r, c := src.Dims()
	data := make([]float64, 0, r*c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			data = append(data, src.At(i, j))
		}
	}
	m, err := matrix.NewFromData(r, c, data)
	if err != nil {
		return nil, errors.Wrap(err, "FromGonum")
	}

	return m, nil
}
