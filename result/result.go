// Package result defines the closed set of expected, data-dependent
// outcomes shared by the reduction, solving and vector-space layers.
//
// Two error channels coexist in this module and are deliberately kept
// apart:
//
//   - Programmer errors (out-of-range indices, ragged construction
//     input, shape mismatches on raw arithmetic) are raised as panics
//     carrying package-level sentinels. They indicate caller bugs.
//   - Domain outcomes (an inconsistent system, incompatible vectors, a
//     rank-deficient reduction) are ordinary return values: a Code, or
//     an *Error wrapping one. They are normal results of running an
//     algorithm on caller-supplied data and are matched with errors.Is
//     or CodeOf.
//
// Every Code is itself an error, so call sites can branch on the
// discriminant directly:
//
//	if err := rref.GaussJordan(m); errors.Is(err, result.NoSolutions) {
//	  // the system is inconsistent
//	}
package result

import (
	"errors"
	"fmt"
)

// Code enumerates every expected algorithmic outcome. The set is closed:
// new failure classes belong in a new Code, not in ad-hoc error values.
type Code uint8

const (
	// UnknownError is the classification fallback for failures that fit
	// no other code.
	UnknownError Code = iota

	// UnderdeterminedSystem reports fewer equations than unknowns.
	UnderdeterminedSystem

	// FreeColumnsInRref reports that reduction left at least one pivot
	// position without a nonzero pivot. Internal to the reduction layer;
	// the solver refines it into NoSolutions or InfiniteSolutions.
	FreeColumnsInRref

	// InfiniteSolutions reports a consistent but under-constrained system.
	InfiniteSolutions

	// NoSolutions reports an inconsistent system (a contradiction row).
	NoSolutions

	// IncompatibleVectors reports a dimension mismatch between the
	// vectors handed to a predicate.
	IncompatibleVectors
)

// codeText holds the stable human-readable form of each Code.
var codeText = map[Code]string{
	UnknownError:          "unknown error",
	UnderdeterminedSystem: "underdetermined system",
	FreeColumnsInRref:     "free columns in rref",
	InfiniteSolutions:     "infinite solutions",
	NoSolutions:           "no solutions",
	IncompatibleVectors:   "incompatible vectors",
}

// String returns the stable text of c; unknown values collapse to the
// UnknownError text.
func (c Code) String() string {
	if s, ok := codeText[c]; ok {
		return s
	}

	return codeText[UnknownError]
}

// Error makes every Code a sentinel error, so errors.Is(err, NoSolutions)
// works on anything produced by New/Newf.
func (c Code) Error() string {
	return "linalg: " + c.String()
}

// Error couples a Code with optional call-site context. It is the
// concrete type behind every domain-channel error in this module.
type Error struct {
	Code    Code
	Message string
}

// Error renders "linalg: <code>: <message>", omitting the message part
// when none was supplied.
func (e *Error) Error() string {
	if e.Message == "" {
		return e.Code.Error()
	}

	return e.Code.Error() + ": " + e.Message
}

// Unwrap exposes the Code to errors.Is / errors.As chains.
func (e *Error) Unwrap() error {
	return e.Code
}

// New builds a domain-channel error carrying code and msg.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Newf builds a domain-channel error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the Code carried by err. Errors that carry no Code
// resolve to UnknownError, the taxonomy's designated fallback.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	var c Code
	if errors.As(err, &c) {
		return c
	}

	return UnknownError
}
