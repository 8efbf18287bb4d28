// Package numeric: sentinel error set.
// All public operations return these sentinels and callers match them via
// errors.Is. Panics are reserved for programmer errors (arithmetic on the
// zero Value, constructing a Rat with denominator 0).

package numeric

import "errors"

var (
	// ErrUnsupported is returned when an operation receives a Value whose
	// representation tag is unset (the zero Value) or otherwise unknown.
	ErrUnsupported = errors.New("numeric: unsupported representation")

	// ErrDivisionByZero is returned by Div whenever the divisor is zero.
	// Every zero normalizes to the exact integer 0 (including Float(0)),
	// so there is no silent ±Inf path through a literal zero divisor;
	// non-finite quotients arise only from denormal underflow or complex
	// float fallback.
	ErrDivisionByZero = errors.New("numeric: division by zero")
)
