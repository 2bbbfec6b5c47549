package rref

import (
	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/result"
	"github.com/katalvlaran/linalg/scalar"
)

// GaussJordan solves the linear system held in the augmented matrix m
// (last column = right-hand side, so ncols−1 unknowns), in place.
//
// Description:
//
//	The solver is a thin classification layer over Reduce. It does not
//	return a solution vector: on success the left block of m is the
//	identity and the last column is the solution, ready for
//	m.Col(m.Cols()−1). Options pass straight through to Reduce.
//
// Algorithm outline:
//  1. Fewer equations than unknowns (rows < cols−1) fails with
//     UnderdeterminedSystem before any reduction.
//  2. Run Reduce. nil means a unique solution.
//  3. On FreeColumnsInRref, scan the reduced rows bottom-up for a
//     contradiction: a row whose coefficients are all exactly zero
//     while its right-hand side is not encodes 0 = b, so the system
//     has no solutions. Without such a row the system is consistent
//     but under-constrained: infinitely many solutions.
//  4. Any other Reduce failure surfaces as UnknownError.
//
// Errors: *result.Error with code UnderdeterminedSystem, NoSolutions,
// InfiniteSolutions or UnknownError. The matrix is left in whatever
// reduced state the run reached; classification reads it but never
// repairs it.
func GaussJordan[T scalar.Scalar[T]](m *matrix.Dense[T], opts ...Option) error {
	// 1) An augmented system needs at least as many equations as
	//    unknowns before reduction is worth attempting.
	if m.Rows() < m.Cols()-1 {
		return result.New(result.UnderdeterminedSystem,
			"the augmented matrix has fewer equations than variables")
	}

	// 2) Reduce in place.
	err := Reduce(m, opts...)
	if err == nil {
		return nil
	}

	// 3) Classify the failure.
	switch result.CodeOf(err) {
	case result.FreeColumnsInRref:
		if hasContradictionRow(m) {
			return result.New(result.NoSolutions, "the system of equations has no solutions")
		}

		return result.New(result.InfiniteSolutions, "the system of equations has infinitely many solutions")
	default:
		return result.New(result.UnknownError, "reduction failed for an unexpected reason")
	}
}

// hasContradictionRow scans bottom-up for a row encoding 0 = b with b
// nonzero: every coefficient entry exactly zero, right-hand side not.
// Bottom-up because reduction pushes degenerate rows toward the
// bottom, so the scan usually ends after a row or two.
func hasContradictionRow[T scalar.Scalar[T]](m *matrix.Dense[T]) bool {
	rows, cols := m.Rows(), m.Cols()
	for r := rows - 1; r >= 0; r-- {
		if isContradictionRow(m.Row(r), cols) {
			return true
		}
	}

	return false
}

// isContradictionRow reports whether row reads 0·x0 + … + 0·xn = b
// with b nonzero.
func isContradictionRow[T scalar.Scalar[T]](row []T, cols int) bool {
	if row[cols-1].IsZero() {
		return false
	}
	for c := 0; c < cols-1; c++ {
		if !row[c].IsZero() {
			return false
		}
	}

	return true
}
