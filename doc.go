// Package linalg is a small linear-algebra kernel: dense matrices over
// any scalar type, in-place reduced row echelon form, a Gauss-Jordan
// solver, and the vector-space predicates built on top of them.
//
// 🚀 What is linalg?
//
//	A generics-first numeric library that brings together:
//		• Scalars: a constrained arithmetic interface, with float64 and
//		  exact-rational implementations
//		• Vectors & matrices: contiguous storage, O(1) row exchanges,
//		  live row views
//		• Reduction: in-place RREF with threshold rounding, verbose
//		  tracing and opt-in parallel elimination
//		• Solving: Gauss-Jordan with full solution-class reporting
//		  (unique, none, infinitely many, underdetermined)
//		• Vector spaces: dependence, angles, cross products, planes and
//		  independence of whole vector sets
//		• Benchmarking: a (size, iterations) harness with YAML suites
//		  and gonum/plot charts
//
// ✨ Why choose linalg?
//
//   - Exact when you want it: plug in rational.Rat and every pivot and
//     every solution is a reduced fraction, never a rounding artifact
//   - Honest about floats: forced exact zeros at eliminated positions
//     keep classification deterministic, and a zero threshold mops up
//     the rest
//   - Two error channels: caller bugs panic with package sentinels,
//     data-driven outcomes return typed result codes for errors.Is
//   - Pure algorithms, real tooling: the kernel has no service
//     baggage, while the edges speak gonum, YAML and SIMD (vek)
//
// Under the hood, everything is organized per concern:
//
//	scalar/     the Scalar constraint + Float
//	rational/   exact int64-backed fractions
//	vector/     fixed-length vectors
//	matrix/     generic dense matrices + gonum interop
//	rref/       Reduce and GaussJordan
//	vecspace/   predicates, Plane, float64 fast paths
//	result/     the shared error-code taxonomy
//	bench/      the scaling harness
//	cmd/        the linalg CLI demos
//
// Quick taste:
//
//	m := matrix.FromRows([][]scalar.Float{
//		{1, 1, 5},
//		{1, -1, 1},
//	})
//	if err := rref.GaussJordan(m); err == nil {
//		fmt.Println(m.Col(m.Cols() - 1)) // [3 2]
//	}
//
//	go get github.com/katalvlaran/linalg
package linalg
