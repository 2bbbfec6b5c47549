package vecspace

import (
	"math"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/result"
	"github.com/katalvlaran/linalg/rref"
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// LinearlyDependent reports whether v1 and v2 are linearly dependent,
// using the equality case of the Cauchy-Schwarz inequality:
// (v1·v2)² == |v1|²·|v2|². The comparison runs in the element type
// with exact scalar equality, so rational vectors are classified
// exactly and no tolerance is involved.
//
// Returns result.IncompatibleVectors when the lengths differ.
func LinearlyDependent[T scalar.Scalar[T]](v1, v2 *vector.Vector[T]) (bool, error) {
	if v1.Len() != v2.Len() {
		return false, result.New(result.IncompatibleVectors,
			"cannot check linear dependence of vectors of unequal dimensions")
	}

	dot := v1.Dot(v2)

	return dot.Mul(dot).Equal(v1.Dot(v1).Mul(v2.Dot(v2))), nil
}

// CosineAngle returns the cosine of the angle between v1 and v2,
// computed as v1·v2 / √(|v1|²·|v2|²) in float64. A zero vector yields
// NaN (0/0), which is left to the caller to interpret.
//
// Returns result.IncompatibleVectors when the lengths differ.
func CosineAngle[T scalar.Scalar[T]](v1, v2 *vector.Vector[T]) (float64, error) {
	if v1.Len() != v2.Len() {
		return 0, result.New(result.IncompatibleVectors,
			"cannot compute the angle between vectors of unequal dimensions")
	}

	dot := v1.Dot(v2).Float64()
	n1 := v1.Dot(v1).Float64()
	n2 := v2.Dot(v2).Float64()

	return dot / math.Sqrt(n1*n2), nil
}

// NormalToPlane reports whether v is normal to the plane, that is,
// whether v points in exactly the same direction as the plane's normal:
// the cosine of the angle between them must equal 1.0 exactly. An
// anti-parallel vector (cosine -1) is reported as not normal.
//
// Returns result.IncompatibleVectors when v is not 3-dimensional.
func NormalToPlane[T scalar.Scalar[T]](p *Plane[T], v *vector.Vector[T]) (bool, error) {
	if v.Len() != 3 {
		return false, result.New(result.IncompatibleVectors,
			"only 3-dimensional vectors can be checked for normalcy with a plane")
	}

	cos, err := CosineAngle(p.Normal(), v)
	if err != nil {
		return false, err
	}

	return cos == 1.0, nil
}

// Cross returns the cross product v1 × v2 by the determinant
// expansion:
//
//	r0 = v1[1]·v2[2] - v1[2]·v2[1]
//	r1 = v1[2]·v2[0] - v1[0]·v2[2]
//	r2 = v1[0]·v2[1] - v1[1]·v2[0]
//
// Returns result.IncompatibleVectors unless both vectors are
// 3-dimensional.
func Cross[T scalar.Scalar[T]](v1, v2 *vector.Vector[T]) (*vector.Vector[T], error) {
	if v1.Len() != 3 || v2.Len() != 3 {
		return nil, result.New(result.IncompatibleVectors,
			"can compute the cross product of 3-dimensional vectors only")
	}

	r0 := v1.At(1).Mul(v2.At(2)).Sub(v1.At(2).Mul(v2.At(1)))
	r1 := v1.At(2).Mul(v2.At(0)).Sub(v1.At(0).Mul(v2.At(2)))
	r2 := v1.At(0).Mul(v2.At(1)).Sub(v1.At(1).Mul(v2.At(0)))

	return vector.From([]T{r0, r1, r2}), nil
}

// LinearlyIndependent reports whether the set vs is linearly
// independent, by the null-space method: stack the vectors as the rows
// of a homogeneous system (an extra all-zero right-hand column) and
// row-reduce it. A unique solution of the homogeneous system is
// necessarily the zero vector, so the set is independent; free columns
// mean a nontrivial null-space vector exists, so the set is dependent.
//
// Shortcuts and errors:
//   - fewer than two vectors: result.UnderdeterminedSystem (the
//     question needs a set to be meaningful),
//   - mixed dimensions: result.IncompatibleVectors,
//   - more vectors than dimensions: false without reducing, since
//     such a set can never be independent,
//   - any reduction failure other than free columns:
//     result.UnknownError.
func LinearlyIndependent[T scalar.Scalar[T]](vs []*vector.Vector[T]) (bool, error) {
	if len(vs) < 2 {
		return false, result.New(result.UnderdeterminedSystem,
			"linear independence needs at least two vectors")
	}

	dim := vs[0].Len()
	for _, v := range vs {
		if v.Len() != dim {
			return false, result.New(result.IncompatibleVectors,
				"cannot compare linear independence of vectors of unequal dimensions")
		}
	}

	if len(vs) > dim {
		return false, nil
	}

	m := matrix.New[T](len(vs), dim+1)
	for r, v := range vs {
		for c := 0; c < dim; c++ {
			m.Set(r, c, v.At(c))
		}
	}

	err := rref.Reduce(m)
	if err == nil {
		return true, nil
	}
	if result.CodeOf(err) == result.FreeColumnsInRref {
		return false, nil
	}

	return false, result.New(result.UnknownError,
		"reduction failed for an unexpected reason")
}
