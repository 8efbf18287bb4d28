// Package solve: sentinel error set (unified, consistent).
// All public operations return these sentinels and callers match them via
// errors.Is. Context (final estimate, residual, step) is attached with
// fmt.Errorf("…: %w", ErrX) at the outer boundary only. Panics are
// reserved for programmer errors in private helpers.

package solve

import "errors"

var (
	// ErrDegreeZero is returned by Roots when the (trimmed) coefficient
	// vector describes a constant: a nonzero constant has no roots.
	ErrDegreeZero = errors.New("solve: constant polynomial has no roots")

	// ErrNotQuadratic is returned by Quadratic when both leading
	// coefficients are zero, leaving no solvable degree ≤ 2 form.
	ErrNotQuadratic = errors.New("solve: leading coefficients are both zero")

	// ErrZeroDivisor is returned by Divide when the divisor is the empty
	// or zero polynomial.
	ErrZeroDivisor = errors.New("solve: division by zero polynomial")

	// ErrNoConvergence is returned by FindRoot when the ensemble exhausts
	// its loop budget without meeting tolerance. Recursive multiplicity-
	// correction searches swallow it internally; only the top-level call
	// surfaces it.
	ErrNoConvergence = errors.New("solve: root search did not converge")

	// ErrDeflation signals a violated internal invariant: dividing a
	// found root out of the polynomial left a non-decreasing degree or a
	// non-negligible remainder. This is an algorithmic inconsistency, not
	// a malformed input; it is propagated, never retried.
	ErrDeflation = errors.New("solve: deflation invariant violated")

	// ErrBadOptions indicates a non-positive budget or tolerance, a nil
	// function, or an invalid guess.
	ErrBadOptions = errors.New("solve: invalid options")
)
