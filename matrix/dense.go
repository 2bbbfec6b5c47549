// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linalg/scalar"
)

// Dense is a fixed-shape dense matrix over T in row-major order.
//
// Elements live in one contiguous backing slice; view holds one window
// per row, and every accessor and row operation goes through view.
// That is what makes ExchangeRows O(1): it repoints two windows
// instead of moving cols elements.
//
// The zero Dense is not usable; construct with New, FromRows or
// Identity. A Dense is not duplicable: there is no Clone, and every
// mutating operation works on the receiver in place. Rebuild from the
// source grid when a pristine copy matters.
type Dense[T scalar.Scalar[T]] struct {
	rows, cols int
	cells      []T   // row-major backing storage; never reallocated
	view       [][]T // one window per row; permuted by ExchangeRows
}

// New returns a rows×cols matrix with every element set to the scalar
// zero of T. T.Zero() is used rather than Go's zero value: for
// rational.Rat the two differ, and only the former is a valid element.
//
// Panics: ErrNoRows when rows < 1, ErrNoCols when cols < 1.
func New[T scalar.Scalar[T]](rows, cols int) *Dense[T] {
	// 1) Validate the requested shape.
	if rows < 1 {
		panic(ErrNoRows)
	}
	if cols < 1 {
		panic(ErrNoCols)
	}

	// 2) One contiguous allocation, filled through the scalar contract.
	var probe T
	zero := probe.Zero()
	cells := make([]T, rows*cols)
	for i := range cells {
		cells[i] = zero
	}

	// 3) Carve the per-row windows. Full slice expressions cap each
	//    window at its own row so an append can never bleed across.
	view := make([][]T, rows)
	for r := 0; r < rows; r++ {
		view[r] = cells[r*cols : (r+1)*cols : (r+1)*cols]
	}

	return &Dense[T]{rows: rows, cols: cols, cells: cells, view: view}
}

// FromRows builds a matrix from a grid of rows, copying every element.
// The grid is not retained; mutating it afterwards does not touch the
// matrix.
//
// Panics: ErrNoRows on an empty grid, ErrNoCols when the first row is
// empty, ErrRaggedRows when rows differ in length.
func FromRows[T scalar.Scalar[T]](grid [][]T) *Dense[T] {
	// 1) Validate the grid shape before allocating anything.
	if len(grid) == 0 {
		panic(ErrNoRows)
	}
	cols := len(grid[0])
	if cols == 0 {
		panic(ErrNoCols)
	}
	for _, row := range grid[1:] {
		if len(row) != cols {
			panic(ErrRaggedRows)
		}
	}

	// 2) Allocate and copy row by row.
	m := New[T](len(grid), cols)
	for r, row := range grid {
		copy(m.view[r], row)
	}

	return m
}

// Identity returns the n×n identity matrix: scalar one on the
// diagonal, scalar zero everywhere else.
//
// Panics: ErrNoRows when n < 1.
func Identity[T scalar.Scalar[T]](n int) *Dense[T] {
	m := New[T](n, n)
	var probe T
	one := probe.One()
	for i := 0; i < n; i++ {
		m.view[i][i] = one
	}

	return m
}

// Rows reports the number of rows.
func (m *Dense[T]) Rows() int { return m.rows }

// Cols reports the number of columns.
func (m *Dense[T]) Cols() int { return m.cols }

// At returns the element at row r, column c.
//
// Panics: ErrRowOutOfRange, ErrColOutOfRange.
func (m *Dense[T]) At(r, c int) T {
	m.mustRow(r)
	m.mustCol(c)

	return m.view[r][c]
}

// Set stores v at row r, column c.
//
// Panics: ErrRowOutOfRange, ErrColOutOfRange.
func (m *Dense[T]) Set(r, c int, v T) {
	m.mustRow(r)
	m.mustCol(c)
	m.view[r][c] = v
}

// Row returns the live window over row r. The slice aliases the
// matrix: writes through it are writes to the matrix. A later
// ExchangeRows changes which window the matrix calls row r; the
// returned slice keeps pointing at the same elements. Copy it when a
// snapshot is needed.
//
// Panics: ErrRowOutOfRange.
func (m *Dense[T]) Row(r int) []T {
	m.mustRow(r)

	return m.view[r]
}

// Col returns a copy of column c, top to bottom.
//
// Panics: ErrColOutOfRange.
func (m *Dense[T]) Col(c int) []T {
	m.mustCol(c)
	out := make([]T, m.rows)
	for r := 0; r < m.rows; r++ {
		out[r] = m.view[r][c]
	}

	return out
}

// String renders the matrix one bracketed row per line, elements
// space-separated. Meant for debugging and verbose traces, not
// round-tripping.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for r := 0; r < m.rows; r++ {
		sb.WriteByte('[')
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%v", m.view[r][c])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
