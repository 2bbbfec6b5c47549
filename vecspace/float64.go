package vecspace

import (
	"math"

	"github.com/viterin/vek"

	"github.com/katalvlaran/linalg/result"
	"github.com/katalvlaran/linalg/vector"
)

// Float64 fast paths for callers that keep large coordinate sets as
// raw []float64 slices. They mirror the vector.Vector and vecspace
// semantics on specialized storage, with the heavy lifting done by
// the SIMD-accelerated viterin/vek routines.

// DotFloat64 returns the inner product x·y. Panics with
// vector.ErrLengthMismatch when the lengths differ, matching
// vector.Vector.Dot.
func DotFloat64(x, y []float64) float64 {
	if len(x) != len(y) {
		panic(vector.ErrLengthMismatch)
	}
	if len(x) == 0 {
		return 0
	}

	return vek.Dot(x, y)
}

// NormFloat64 returns the Euclidean magnitude √(x·x), matching
// vector.Vector.Norm. An empty slice has magnitude 0.
func NormFloat64(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	return vek.Norm(x)
}

// CosineAngleFloat64 returns the cosine of the angle between x and y,
// computed as x·y / √((x·x)·(y·y)) so the result agrees with
// CosineAngle on the same data. A zero vector yields NaN.
//
// Returns result.IncompatibleVectors when the lengths differ.
func CosineAngleFloat64(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, result.New(result.IncompatibleVectors,
			"cannot compute the angle between vectors of unequal dimensions")
	}

	dot := DotFloat64(x, y)
	nx := DotFloat64(x, x)
	ny := DotFloat64(y, y)

	return dot / math.Sqrt(nx*ny), nil
}
