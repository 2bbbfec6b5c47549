// Package vector provides a fixed-length numeric vector over any
// scalar.Scalar element type.
//
// A Vector owns its storage: construction copies the input, the length
// never changes afterwards, and there is no Clone. Vectors travel by
// pointer, never by value, so in-place mutation (Set, Scale) is visible
// to every holder of the pointer, which is exactly what the reduction
// algorithms rely on.
//
// Index and length violations are caller bugs and panic with the
// package sentinels below; data-dependent outcomes (such as comparing
// vectors of different dimensions inside a predicate) are reported by
// package vecspace through the result taxonomy instead.
package vector

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/linalg/scalar"
)

var (
	// ErrZeroLength is raised (as a panic) when constructing a vector of
	// length < 1.
	ErrZeroLength = errors.New("vector: length must be positive")

	// ErrIndexOutOfRange is raised (as a panic) by At/Set with a bad index.
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrLengthMismatch is raised (as a panic) by Dot/Add/Sub on vectors
	// of different lengths.
	ErrLengthMismatch = errors.New("vector: operand lengths differ")
)

// Vector is a fixed-length array of scalars.
type Vector[T scalar.Scalar[T]] struct {
	elems []T
}

// New returns a zero-filled vector of length n. Panics with
// ErrZeroLength when n < 1.
func New[T scalar.Scalar[T]](n int) *Vector[T] {
	if n < 1 {
		panic(ErrZeroLength)
	}
	var z T
	elems := make([]T, n)
	for i := range elems {
		elems[i] = z.Zero()
	}

	return &Vector[T]{elems: elems}
}

// From returns a vector owning a copy of elems. Panics with
// ErrZeroLength when elems is empty.
func From[T scalar.Scalar[T]](elems []T) *Vector[T] {
	if len(elems) == 0 {
		panic(ErrZeroLength)
	}
	own := make([]T, len(elems))
	copy(own, elems)

	return &Vector[T]{elems: own}
}

// Len returns the fixed length.
func (v *Vector[T]) Len() int { return len(v.elems) }

// At returns element i. Panics with ErrIndexOutOfRange on a bad index.
func (v *Vector[T]) At(i int) T {
	if i < 0 || i >= len(v.elems) {
		panic(ErrIndexOutOfRange)
	}

	return v.elems[i]
}

// Set stores x at index i. Panics with ErrIndexOutOfRange on a bad index.
func (v *Vector[T]) Set(i int, x T) {
	if i < 0 || i >= len(v.elems) {
		panic(ErrIndexOutOfRange)
	}
	v.elems[i] = x
}

// Dot returns the inner product v·x. Panics with ErrLengthMismatch when
// the lengths differ: raw arithmetic treats shape violations as caller
// bugs.
func (v *Vector[T]) Dot(x *Vector[T]) T {
	if len(v.elems) != len(x.elems) {
		panic(ErrLengthMismatch)
	}
	var z T
	sum := z.Zero()
	for i := range v.elems {
		sum = sum.Add(v.elems[i].Mul(x.elems[i]))
	}

	return sum
}

// Norm returns the Euclidean magnitude √(v·v) as a float64.
func (v *Vector[T]) Norm() float64 {
	return math.Sqrt(v.Dot(v).Float64())
}

// Scale multiplies every element by f, in place.
func (v *Vector[T]) Scale(f T) {
	for i := range v.elems {
		v.elems[i] = v.elems[i].Mul(f)
	}
}

// Add returns a new vector v + x. Panics with ErrLengthMismatch when the
// lengths differ.
func (v *Vector[T]) Add(x *Vector[T]) *Vector[T] {
	if len(v.elems) != len(x.elems) {
		panic(ErrLengthMismatch)
	}
	out := make([]T, len(v.elems))
	for i := range v.elems {
		out[i] = v.elems[i].Add(x.elems[i])
	}

	return &Vector[T]{elems: out}
}

// Sub returns a new vector v - x. Panics with ErrLengthMismatch when the
// lengths differ.
func (v *Vector[T]) Sub(x *Vector[T]) *Vector[T] {
	if len(v.elems) != len(x.elems) {
		panic(ErrLengthMismatch)
	}
	out := make([]T, len(v.elems))
	for i := range v.elems {
		out[i] = v.elems[i].Sub(x.elems[i])
	}

	return &Vector[T]{elems: out}
}

// String renders the vector as "[e0 e1 ... en]" for debugging.
func (v *Vector[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range v.elems {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", e)
	}
	b.WriteByte(']')

	return b.String()
}
