// SPDX-License-Identifier: MIT

package matrix

// LinearCombRows replaces row dst with a·row[dst] + b·row[src], the
// elementary operation elimination is built from. dst == src is
// allowed; each element then combines its own original value on both
// sides of the sum.
//
// Panics: ErrRowOutOfRange.
func (m *Dense[T]) LinearCombRows(dst int, a T, src int, b T) {
	m.mustRow(dst)
	m.mustRow(src)
	d, s := m.view[dst], m.view[src]
	for c := 0; c < m.cols; c++ {
		d[c] = a.Mul(d[c]).Add(b.Mul(s[c]))
	}
}

// ExchangeRows swaps rows i and j in O(1) by repointing their windows;
// the backing storage does not move. i == j is a no-op.
//
// Panics: ErrRowOutOfRange.
func (m *Dense[T]) ExchangeRows(i, j int) {
	m.mustRow(i)
	m.mustRow(j)
	m.view[i], m.view[j] = m.view[j], m.view[i]
}

// ScaleRow multiplies every element of row r by k.
//
// Panics: ErrRowOutOfRange.
func (m *Dense[T]) ScaleRow(r int, k T) {
	m.mustRow(r)
	row := m.view[r]
	for c := range row {
		row[c] = row[c].Mul(k)
	}
}

// Scale multiplies every element of the matrix by k. The contiguous
// backing makes this a single pass whatever the current row order.
func (m *Dense[T]) Scale(k T) {
	for i := range m.cells {
		m.cells[i] = m.cells[i].Mul(k)
	}
}
