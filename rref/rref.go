package rref

import (
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/result"
	"github.com/katalvlaran/linalg/scalar"
)

// Reduce brings m to reduced row echelon form in place.
//
// Description:
//
//	Vanilla RREF over a matrix of any shape; m is neither required to
//	be square nor augmented. The reduction mutates the caller's matrix
//	and never copies it.
//
// Algorithm outline, for pivot index i in [0, min(rows, cols)):
//  1. If m[i][i] is zero, scan the rows below for the first nonzero
//     entry in column i and exchange it up. When the whole column is
//     zero from row i down, flag the pivot position as free and move
//     to the next index without eliminating.
//  2. With a pivot secured, replace every other row r that has a
//     nonzero entry in column i with row r − (m[r][i]/m[i][i])·row i,
//     then force m[r][i] to exact scalar zero. Arithmetic alone can
//     leave residue like 1e-14 there; the write makes the invariant
//     unconditional.
//  3. Scale row i by 1/m[i][i] so the pivot becomes exactly one.
//  4. With WithZeroThreshold(eps), additionally sweep each touched row
//     after elimination and after normalization, replacing elements
//     with |Float64()| < eps by exact zero.
//
// Returns nil when every pivot position was secured. Otherwise returns
// a *result.Error with code result.FreeColumnsInRref listing the free
// pivot positions; classification of what that means for a linear
// system is GaussJordan's job, not Reduce's.
//
// Complexity: O(min(rows, cols) · rows · cols) scalar operations.
func Reduce[T scalar.Scalar[T]](m *matrix.Dense[T], opts ...Option) error {
	cfg := gatherOptions(opts...)

	var probe T
	one := probe.One()
	zero := probe.Zero()

	// 1) The pivot walk stops at the smaller dimension.
	limit := m.Rows()
	if m.Cols() < limit {
		limit = m.Cols()
	}

	var free []int
	for i := 0; i < limit; i++ {
		// 2) Secure a nonzero pivot, adopting a row from below when
		//    the diagonal entry is zero.
		if m.At(i, i).IsZero() {
			next, ok := pivotBelow(m, i)
			if !ok {
				free = append(free, i)
				if cfg.verbose {
					fmt.Printf("rref: no pivot in column %d at or below row %d, column is free\n", i, i)
				}

				continue
			}
			m.ExchangeRows(i, next)
			if cfg.verbose {
				fmt.Printf("rref: exchanged rows %d and %d to secure pivot %d\n", i, next, i)
			}
		}

		// 3) Eliminate column i from every other row. Each update
		//    writes only its own row and reads the pivot row, so the
		//    optional fan-out cannot race and the result matches the
		//    serial walk bit for bit.
		pivot := m.At(i, i)
		if cfg.workers > 0 {
			p := pool.New().WithMaxGoroutines(cfg.workers)
			for r := 0; r < m.Rows(); r++ {
				if r == i {
					continue
				}
				p.Go(func() { eliminateRow(m, r, i, pivot, one, zero, cfg.eps) })
			}
			p.Wait()
		} else {
			for r := 0; r < m.Rows(); r++ {
				if r == i {
					continue
				}
				eliminateRow(m, r, i, pivot, one, zero, cfg.eps)
			}
		}

		// 4) Normalize the pivot row.
		m.ScaleRow(i, one.Div(pivot))
		if cfg.eps > 0 {
			roundRow(m, i, cfg.eps, zero)
		}
		if cfg.verbose {
			fmt.Printf("rref: pivot %d done\n%v", i, m)
		}
	}

	if len(free) > 0 {
		return result.Newf(result.FreeColumnsInRref, "no pivot available at positions %v", free)
	}

	return nil
}

// pivotBelow returns the first row strictly below row i with a nonzero
// entry in column i.
func pivotBelow[T scalar.Scalar[T]](m *matrix.Dense[T], i int) (int, bool) {
	for r := i + 1; r < m.Rows(); r++ {
		if !m.At(r, i).IsZero() {
			return r, true
		}
	}

	return 0, false
}

// eliminateRow clears column col of row r against the pivot row: the
// linear combination, the forced exact zero, and the optional
// threshold sweep over the touched row.
func eliminateRow[T scalar.Scalar[T]](m *matrix.Dense[T], r, col int, pivot, one, zero T, eps float64) {
	if m.At(r, col).IsZero() {
		return
	}
	factor := m.At(r, col).Div(pivot).Neg()
	m.LinearCombRows(r, one, col, factor)
	m.Set(r, col, zero)
	if eps > 0 {
		roundRow(m, r, eps, zero)
	}
}

// roundRow replaces every element of row r whose |Float64()| is below
// eps with exact scalar zero.
func roundRow[T scalar.Scalar[T]](m *matrix.Dense[T], r int, eps float64, zero T) {
	row := m.Row(r)
	for c, v := range row {
		if f := v.Float64(); f > -eps && f < eps {
			row[c] = zero
		}
	}
}
