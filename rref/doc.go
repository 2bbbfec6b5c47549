// Package rref reduces a matrix.Dense to reduced row echelon form in
// place and classifies linear systems on top of that reduction.
//
// 🚀 What lives here?
//
//	Reduce       the central algorithm: in-place RREF over any shape,
//	             any scalar.Scalar element type.
//	GaussJordan  the solver: validates an augmented system, runs
//	             Reduce, and classifies the outcome (unique solution,
//	             none, infinitely many, underdetermined).
//
// ✨ Contract:
//   - Both functions mutate the caller's matrix; there is no
//     non-mutating variant. On success the left block is the identity
//     and, for GaussJordan, the last column is the solution.
//   - Outcomes travel on the domain channel: a nil error or a
//     *result.Error whose code tells the caller what the data did.
//     Only caller bugs (bad indices, impossible shapes) panic.
//   - Reduction is deterministic: identical input matrices reduce to
//     bit-identical output, with or without WithParallelEliminate.
//
// ⚙️ Options:
//
//	WithZeroThreshold(eps)      round |x| < eps to exact zero while
//	                            reducing (float noise control)
//	WithVerbose()               print each pivot step
//	WithParallelEliminate(n)    fan row eliminations out on a pool of
//	                            n goroutines
//
// Complexity: O(min(rows, cols) · rows · cols) scalar operations.
package rref
