// Package rational provides Rat, an exact rational scalar for the
// matrix/vector kernels.
//
// Rat keeps elimination free of floating round-off: reducing a matrix
// of Rat values produces exact pivots and exact zeros, so equality
// checks in the reduction layer never need a tolerance.
//
// Every Rat is held in canonical form: reduced to lowest terms by the
// Euclidean GCD, with the sign carried by the numerator (the
// denominator is always positive). Canonical form makes Equal a plain
// field comparison.
//
// The zero value of Rat is NOT valid (its denominator is zero); obtain
// values through New, FromInt, or the Zero/One methods.
package rational

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var (
	// ErrZeroDenominator is raised (as a panic) when constructing a
	// rational with denominator zero.
	ErrZeroDenominator = errors.New("rational: denominator must be non-zero")

	// ErrDivisionByZero is raised (as a panic) when dividing by a zero
	// rational or inverting zero.
	ErrDivisionByZero = errors.New("rational: division by zero")
)

// Rat is an exact rational number in canonical form.
type Rat struct {
	num, den int64
}

// New returns num/den in canonical form. It panics with
// ErrZeroDenominator when den is zero: a zero denominator is a caller
// bug, not a data-dependent outcome.
func New(num, den int64) Rat {
	if den == 0 {
		panic(ErrZeroDenominator)
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs(num), den)

	return Rat{num: num / g, den: den / g}
}

// FromInt returns n as a rational n/1.
func FromInt(n int64) Rat {
	return Rat{num: n, den: 1}
}

// Num returns the canonical numerator (carries the sign).
func (r Rat) Num() int64 { return r.num }

// Den returns the canonical denominator (always positive).
func (r Rat) Den() int64 { return r.den }

// Add returns r + x.
func (r Rat) Add(x Rat) Rat {
	return New(r.num*x.den+x.num*r.den, r.den*x.den)
}

// Sub returns r - x.
func (r Rat) Sub(x Rat) Rat {
	return New(r.num*x.den-x.num*r.den, r.den*x.den)
}

// Mul returns r * x.
func (r Rat) Mul(x Rat) Rat {
	return New(r.num*x.num, r.den*x.den)
}

// Div returns r / x. It panics with ErrDivisionByZero when x is zero.
func (r Rat) Div(x Rat) Rat {
	if x.IsZero() {
		panic(ErrDivisionByZero)
	}

	return New(r.num*x.den, r.den*x.num)
}

// Inv returns the reciprocal 1/r. It panics with ErrDivisionByZero when
// r is zero.
func (r Rat) Inv() Rat {
	if r.IsZero() {
		panic(ErrDivisionByZero)
	}

	return New(r.den, r.num)
}

// Neg returns -r.
func (r Rat) Neg() Rat {
	return Rat{num: -r.num, den: r.den}
}

// Zero returns 0/1. Callable on the zero value.
func (Rat) Zero() Rat { return Rat{num: 0, den: 1} }

// One returns 1/1. Callable on the zero value.
func (Rat) One() Rat { return Rat{num: 1, den: 1} }

// Equal reports exact equality. Canonical form makes this a field
// comparison.
func (r Rat) Equal(x Rat) bool {
	return r.num == x.num && r.den == x.den
}

// IsZero reports whether r is zero.
func (r Rat) IsZero() bool { return r.num == 0 }

// Cmp compares r and x exactly, returning -1, 0 or +1. Both
// denominators are positive in canonical form, so cross-multiplication
// preserves order.
func (r Rat) Cmp(x Rat) int {
	l, rr := r.num*x.den, x.num*r.den
	switch {
	case l < rr:
		return -1
	case l > rr:
		return 1
	default:
		return 0
	}
}

// Less reports r < x exactly.
func (r Rat) Less(x Rat) bool { return r.Cmp(x) < 0 }

// Float64 converts r for magnitude/angle computations.
func (r Rat) Float64() float64 {
	return float64(r.num) / float64(r.den)
}

// String renders r as "num/den".
func (r Rat) String() string {
	return fmt.Sprintf("%d/%d", r.num, r.den)
}

// gcd computes the greatest common divisor by the Euclidean algorithm.
// gcd(0, b) = b, so zero numerators canonicalize to 0/1.
func gcd[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// abs returns |n| for any signed integer type.
func abs[T constraints.Signed](n T) T {
	if n < 0 {
		return -n
	}

	return n
}
