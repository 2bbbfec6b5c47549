// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// Add returns the element-wise sum m + other as a new matrix. Neither
// operand is modified.
//
// Panics: ErrShapeMismatch.
func (m *Dense[T]) Add(other *Dense[T]) *Dense[T] {
	m.mustSameShape(other)
	out := New[T](m.rows, m.cols)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			out.view[r][c] = m.view[r][c].Add(other.view[r][c])
		}
	}

	return out
}

// Sub returns the element-wise difference m − other as a new matrix.
// Neither operand is modified.
//
// Panics: ErrShapeMismatch.
func (m *Dense[T]) Sub(other *Dense[T]) *Dense[T] {
	m.mustSameShape(other)
	out := New[T](m.rows, m.cols)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			out.view[r][c] = m.view[r][c].Sub(other.view[r][c])
		}
	}

	return out
}

// Mul returns the matrix product m·other as a new Rows()×other.Cols()
// matrix. Neither operand is modified.
//
// Panics: ErrShapeMismatch when m.Cols() != other.Rows().
func (m *Dense[T]) Mul(other *Dense[T]) *Dense[T] {
	m.mustInner(other.rows)
	out := New[T](m.rows, other.cols)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < other.cols; c++ {
			sum := out.view[r][c] // starts at scalar zero
			for k := 0; k < m.cols; k++ {
				sum = sum.Add(m.view[r][k].Mul(other.view[k][c]))
			}
			out.view[r][c] = sum
		}
	}

	return out
}

// MulVec returns the matrix-vector product m·v as a new vector of
// length Rows(). Neither operand is modified.
//
// Panics: ErrShapeMismatch when v.Len() != m.Cols().
func (m *Dense[T]) MulVec(v *vector.Vector[T]) *vector.Vector[T] {
	m.mustInner(v.Len())
	out := vector.New[T](m.rows)
	for r := 0; r < m.rows; r++ {
		sum := out.At(r) // starts at scalar zero
		for c := 0; c < m.cols; c++ {
			sum = sum.Add(m.view[r][c].Mul(v.At(c)))
		}
		out.Set(r, sum)
	}

	return out
}

// VecMul returns m.MulVec(v): a convenience spelling with the vector
// on the left, not a transposed row-vector product. The result has
// length m.Rows(), and v must have length m.Cols().
//
// Panics: ErrShapeMismatch.
func VecMul[T scalar.Scalar[T]](v *vector.Vector[T], m *Dense[T]) *vector.Vector[T] {
	return m.MulVec(v)
}
