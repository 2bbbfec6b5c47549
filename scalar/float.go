package scalar

import "strconv"

// Float is the float64 scalar. Arithmetic follows IEEE-754, including
// Div by zero (±Inf) and NaN propagation; callers that need exactness
// use rational.Rat instead.
type Float float64

// Add returns f + x.
func (f Float) Add(x Float) Float { return f + x }

// Sub returns f - x.
func (f Float) Sub(x Float) Float { return f - x }

// Mul returns f * x.
func (f Float) Mul(x Float) Float { return f * x }

// Div returns f / x with IEEE semantics.
func (f Float) Div(x Float) Float { return f / x }

// Neg returns -f.
func (f Float) Neg() Float { return -f }

// Zero returns 0.
func (Float) Zero() Float { return 0 }

// One returns 1.
func (Float) One() Float { return 1 }

// Equal reports f == x. Exact comparison, no tolerance.
func (f Float) Equal(x Float) bool { return f == x }

// IsZero reports f == 0.
func (f Float) IsZero() bool { return f == 0 }

// Float64 returns f as a plain float64.
func (f Float) Float64() float64 { return float64(f) }

// String renders f with the shortest representation that round-trips.
func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}
