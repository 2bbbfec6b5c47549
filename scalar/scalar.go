// Package scalar defines the element contract every kernel in this
// module is generic over, plus Float, the float64 implementation.
//
// A scalar must form a field under its own methods and be convertible
// to float64 for magnitude and angle computations. The constraint is
// self-referential (T's methods consume and produce T), so a
// non-conforming instantiation fails at compile time rather than at
// first use.
//
// Two implementations ship with the module:
//   - Float (this package): IEEE-754 float64 arithmetic.
//   - rational.Rat: exact arithmetic, immune to elimination round-off.
package scalar

// Scalar is the arithmetic contract consumed by vector, matrix, rref
// and vecspace.
//
// Zero and One exist because the Go zero value of an implementing type
// may not be a valid scalar (a rational with a zero denominator), and
// because pivot normalization needs a multiplicative unit. Both must be
// callable on any receiver, including the zero value.
//
// Div with a zero divisor follows the implementation: Float yields the
// IEEE result, rational.Rat panics. The reduction algorithms never
// divide by a scalar they have not already checked with IsZero.
type Scalar[T any] interface {
	// Add returns the receiver plus x.
	Add(x T) T
	// Sub returns the receiver minus x.
	Sub(x T) T
	// Mul returns the receiver times x.
	Mul(x T) T
	// Div returns the receiver divided by x.
	Div(x T) T
	// Neg returns the additive inverse of the receiver.
	Neg() T
	// Zero returns the additive identity.
	Zero() T
	// One returns the multiplicative identity.
	One() T
	// Equal reports exact equality with x.
	Equal(x T) bool
	// IsZero reports whether the receiver is the additive identity.
	IsZero() bool
	// Float64 converts the receiver for magnitude/angle computations.
	Float64() float64
}
