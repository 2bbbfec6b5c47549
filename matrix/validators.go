// SPDX-License-Identifier: MIT

package matrix

// mustRow panics with ErrRowOutOfRange unless 0 ≤ r < Rows().
func (m *Dense[T]) mustRow(r int) {
	if r < 0 || r >= m.rows {
		panic(ErrRowOutOfRange)
	}
}

// mustCol panics with ErrColOutOfRange unless 0 ≤ c < Cols().
func (m *Dense[T]) mustCol(c int) {
	if c < 0 || c >= m.cols {
		panic(ErrColOutOfRange)
	}
}

// mustSameShape panics with ErrShapeMismatch unless other has exactly
// the receiver's shape.
func (m *Dense[T]) mustSameShape(other *Dense[T]) {
	if m.rows != other.rows || m.cols != other.cols {
		panic(ErrShapeMismatch)
	}
}

// mustInner panics with ErrShapeMismatch unless the receiver's column
// count equals n, the row count (or length) of a right-hand operand.
func (m *Dense[T]) mustInner(n int) {
	if m.cols != n {
		panic(ErrShapeMismatch)
	}
}
