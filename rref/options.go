// Package rref: functional configuration for the reducer.
//
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults,
//   - WithX constructors with strong validation (panic on nonsensical
//     values),
//   - gatherOptions helper (internal) that resolves the defaults.

package rref

import "math"

// DefaultZeroThreshold disables rounding: only exact scalar zeros are
// treated as zero during pivot selection and elimination.
const DefaultZeroThreshold = 0.0

// Internal panic messages (no magic strings).
const (
	panicThresholdInvalid = "rref: WithZeroThreshold: eps must be finite and > 0"
	panicWorkersInvalid   = "rref: WithParallelEliminate: workers must be >= 1"
)

// Option mutates the reducer configuration. Constructors panic only on
// nonsensical values (programmer error); applying a valid Option never
// fails.
type Option func(*Options)

// Options stores the effective configuration after applying Option
// setters. Fields are unexported; Reduce and GaussJordan accept
// ...Option and resolve them via gatherOptions.
type Options struct {
	eps     float64 // 0 disables rounding; > 0 rounds |x| < eps to exact zero
	verbose bool    // step-by-step prints on stdout
	workers int     // 0 serial elimination; >= 1 pool fan-out
}

// WithZeroThreshold enables numerical rounding: after each row
// elimination and after pivot normalization, every element of the
// touched row whose |Float64()| is below eps is replaced with exact
// scalar zero. This keeps float residue like 1e-14 from masquerading
// as a pivot; for exact scalars it is harmless and pointless.
//
// Panics with a stable message when eps is NaN, infinite or not
// positive.
func WithZeroThreshold(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithVerbose prints each pivot step (exchanges, eliminations,
// normalizations) to stdout. Meant for demos and debugging.
func WithVerbose() Option {
	return func(o *Options) { o.verbose = true }
}

// WithParallelEliminate fans the per-pivot row eliminations out across
// at most workers goroutines. Each elimination writes only its own row
// and reads the pivot row, so the reduced matrix is bit-identical to
// the serial result; only the wall clock changes. A sensible cap is
// runtime.NumCPU().
//
// Panics with a stable message when workers < 1.
func WithParallelEliminate(workers int) Option {
	if workers < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = workers }
}

// gatherOptions resolves the defaults, then applies setters in order.
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultZeroThreshold}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
