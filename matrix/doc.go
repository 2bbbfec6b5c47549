// SPDX-License-Identifier: MIT

// Package matrix provides a dense, row-major matrix over any
// scalar.Scalar element type, with the in-place row operations the
// reduction layer is built on.
//
// 🚀 What is matrix.Dense?
//
//	A fixed-shape nrows×ncols grid backed by one contiguous allocation,
//	addressed through per-row windows:
//	  • element access: At / Set / Row / Col, all bounds-checked
//	  • row operations: LinearCombRows, ExchangeRows, ScaleRow, Scale
//	  • arithmetic: Add, Sub, Mul, MulVec, VecMul
//	  • constructors: New (zero), FromRows (copying), Identity
//
// ✨ Design points:
//   - ExchangeRows is O(1): it repoints two row windows instead of
//     copying ncols elements. The backing storage never moves.
//   - A Dense is not duplicable. There is no Clone; the pointer is the
//     only handle, and every algorithm mutates the caller's matrix in
//     place. Rebuild from the source grid when a pristine copy matters.
//   - Shape and index violations are caller bugs: constructors,
//     indexers and arithmetic panic with the package sentinels from
//     errors.go. Data-dependent outcomes (rank deficiency, inconsistent
//     systems) are reported by package rref through package result.
//
// ⚙️ Usage:
//
//	m := matrix.FromRows([][]scalar.Float{
//	  {11, 22, 17, 100},
//	  {0, 0, 22, 200},
//	  {19, 82, 67, 300},
//	})
//	if err := rref.GaussJordan(m); err == nil {
//	  fmt.Println(m.Col(m.Cols() - 1)) // the solution column
//	}
//
// The element type is anything satisfying scalar.Scalar: scalar.Float
// for IEEE arithmetic, rational.Rat for exact elimination.
package matrix
