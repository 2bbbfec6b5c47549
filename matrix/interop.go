// SPDX-License-Identifier: MIT

package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/scalar"
)

// ToGonum copies the matrix into a gonum mat.Dense, converting every
// element through Float64. Exact rational entries lose exactness in
// the copy; the adapter is a bridge to gonum's decompositions and
// formatting, not part of the reduction path.
func (m *Dense[T]) ToGonum() *mat.Dense {
	out := mat.NewDense(m.rows, m.cols, nil)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			out.Set(r, c, m.view[r][c].Float64())
		}
	}

	return out
}

// FromGonum copies any gonum matrix into a fresh Dense[scalar.Float].
//
// Panics: ErrNoRows / ErrNoCols when src has a zero dimension.
func FromGonum(src mat.Matrix) *Dense[scalar.Float] {
	rows, cols := src.Dims()
	out := New[scalar.Float](rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out.view[r][c] = scalar.Float(src.At(r, c))
		}
	}

	return out
}
