// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Sentinel values raised by panic on caller bugs: impossible shapes,
// out-of-range indices, mismatched operands. They are panic payloads,
// not returned errors: recover and compare with errors.Is when a
// boundary must translate them. Data-dependent failures never panic;
// those travel through package result.
var (
	// ErrNoRows is raised when a constructor receives a row count < 1.
	ErrNoRows = errors.New("matrix: number of rows must be at least 1")

	// ErrNoCols is raised when a constructor receives a column count < 1.
	ErrNoCols = errors.New("matrix: number of columns must be at least 1")

	// ErrRaggedRows is raised by FromRows when the input rows differ in length.
	ErrRaggedRows = errors.New("matrix: rows must all have the same length")

	// ErrRowOutOfRange is raised when a row index is negative or ≥ Rows().
	ErrRowOutOfRange = errors.New("matrix: row index out of range")

	// ErrColOutOfRange is raised when a column index is negative or ≥ Cols().
	ErrColOutOfRange = errors.New("matrix: column index out of range")

	// ErrShapeMismatch is raised by Add and Sub when the operands
	// disagree in shape, and by Mul, MulVec and VecMul when the inner
	// dimensions disagree.
	ErrShapeMismatch = errors.New("matrix: operand shapes are incompatible")
)
