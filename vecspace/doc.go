// Package vecspace answers geometric questions about vectors and
// planes: linear dependence and independence, the angle between two
// vectors, cross products, and whether a vector is normal to a plane.
//
// 🚀 What lives here?
//
//	LinearlyDependent    Cauchy-Schwarz equality test for two vectors
//	CosineAngle          cosine of the angle between two vectors
//	Cross                cross product of two 3-dimensional vectors
//	NormalToPlane        is a vector parallel to a plane's normal?
//	LinearlyIndependent  independence of a whole set, via row reduction
//	Plane                a plane in 3-space, as ax + by + cz = k
//
// ✨ Contract:
//   - Every predicate reports dimension mismatches through the domain
//     channel as result.IncompatibleVectors. Shape checks run before
//     any arithmetic, so a mismatched pair never trips the panic
//     channel of package vector.
//   - Exactness follows the element type: with rational.Rat the
//     dependence and independence tests are exact; with scalar.Float
//     they inherit IEEE 754 behavior, including a NaN cosine for zero
//     vectors.
//   - LinearlyIndependent assembles a homogeneous system from the
//     vectors and asks rref.Reduce whether only the trivial solution
//     exists. Free columns mean a nontrivial null-space vector, hence
//     dependence.
//
// ⚙️ Fast paths:
//
//	DotFloat64, NormFloat64 and CosineAngleFloat64 work on raw
//	[]float64 slices through the SIMD-accelerated viterin/vek library
//	for callers that keep large coordinate sets outside vector.Vector.
package vecspace
