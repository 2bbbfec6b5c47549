package vecspace

import (
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// Plane is a plane in 3-space written as ax + by + cz = k. It carries
// its normal vector (a, b, c), one representative point, and the raw
// coefficients. A Plane owns its vectors: constructors copy, and the
// accessors hand back the owned copies.
type Plane[T scalar.Scalar[T]] struct {
	normal *vector.Vector[T]
	point  *vector.Vector[T]

	a, b, c, k T
}

// NewPlane builds a plane from the coefficients of ax + by + cz = k.
// The representative point is the plane's intercept on the first axis
// whose coefficient is nonzero: (k/a, 0, 0), (0, k/b, 0) or
// (0, 0, k/c). Panics with ErrDegeneratePlane when a, b and c are all
// zero, since no plane has a zero normal.
func NewPlane[T scalar.Scalar[T]](a, b, c, k T) *Plane[T] {
	if a.IsZero() && b.IsZero() && c.IsZero() {
		panic(ErrDegeneratePlane)
	}

	point := vector.New[T](3)
	switch {
	case !a.IsZero():
		point.Set(0, k.Div(a))
	case !b.IsZero():
		point.Set(1, k.Div(b))
	default:
		point.Set(2, k.Div(c))
	}

	return &Plane[T]{
		normal: vector.From([]T{a, b, c}),
		point:  point,
		a:      a, b: b, c: c, k: k,
	}
}

// PlaneThrough builds the plane with the given normal passing through
// the given point; k is the dot product normal·point. Both arguments
// are copied. Panics with ErrPlaneDimension unless both vectors are
// 3-dimensional.
func PlaneThrough[T scalar.Scalar[T]](normal, point *vector.Vector[T]) *Plane[T] {
	if normal.Len() != 3 || point.Len() != 3 {
		panic(ErrPlaneDimension)
	}

	return &Plane[T]{
		normal: vector.From([]T{normal.At(0), normal.At(1), normal.At(2)}),
		point:  vector.From([]T{point.At(0), point.At(1), point.At(2)}),
		a:      normal.At(0),
		b:      normal.At(1),
		c:      normal.At(2),
		k:      normal.Dot(point),
	}
}

// Normal returns the plane's normal vector (a, b, c).
func (p *Plane[T]) Normal() *vector.Vector[T] { return p.normal }

// Point returns a point that lies on the plane.
func (p *Plane[T]) Point() *vector.Vector[T] { return p.point }

// Coefficients returns the four coefficients of ax + by + cz = k, in
// that order.
func (p *Plane[T]) Coefficients() (a, b, c, k T) {
	return p.a, p.b, p.c, p.k
}
