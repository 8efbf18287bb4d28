package solve

import (
	"math"

	"github.com/katalvlaran/polyroot/numeric"
)

// Func is the scalar function probed by FindRoot. It must be total over
// the complex plane in the sense that it returns some Value for every
// input; non-finite outputs are handled (and escaped) by the search.
type Func func(numeric.Value) numeric.Value

// Options bounds how hard FindRoot searches before failing.
//
// Fields:
//   - Iterations — attempt budget of each individual strategy
//     (Newton, random search, secant) within one loop.
//   - Loops      — how many times the whole strategy ensemble is rerun.
//   - Tolerance  — convergence tolerance: the search succeeds once
//     |f(x)| ≤ Tolerance and the last accepted step is ≤ Tolerance
//     (or immediately when f(x) is exactly zero).
//   - RealRange, ImagRange — advisory bounds on where roots are expected;
//     they seed the absolute sampling window of the random strategy and
//     are NOT enforced as hard clamps.
//
// Two calls with identical guess, function and Options are bit-identical:
// the random strategy is reseeded from the current estimate, never from
// time or global state.
type Options struct {
	Iterations int
	Loops      int
	Tolerance  float64
	RealRange  [2]float64
	ImagRange  [2]float64
}

// DefaultOptions returns the budget used throughout the package:
// 150 attempts per strategy, 3 ensemble loops, tolerance 1e-13, and a
// [-1, 1] advisory window on both axes.
func DefaultOptions() Options {
	return Options{
		Iterations: 150,
		Loops:      3,
		Tolerance:  1e-13,
		RealRange:  [2]float64{-1, 1},
		ImagRange:  [2]float64{-1, 1},
	}
}

// validate rejects unusable budgets. Advisory ranges are not validated;
// a reversed range simply shrinks the random window.
func (o *Options) validate() error {
	if o.Iterations <= 0 || o.Loops <= 0 {
		return ErrBadOptions
	}
	if !(o.Tolerance > 0) || math.IsInf(o.Tolerance, 0) {
		return ErrBadOptions
	}
	return nil
}

// RootsOptions extends Options with the deflation-specific knobs.
//
// Fields:
//   - MaxDenominator     — bound for snapping a found root of an
//     exact-typed polynomial back to a rational (continued-fraction
//     rationalization); a snap is kept only if the exact re-evaluation
//     is exactly zero.
//   - RemainderTolerance — how large the remainder of dividing out an
//     approximate root may be, relative to the magnitude of the largest
//     dividend coefficient (floor 1), before deflation is declared
//     inconsistent (ErrDeflation).
type RootsOptions struct {
	Options
	MaxDenominator     int64
	RemainderTolerance float64
}

// DefaultRootsOptions returns DefaultOptions plus a denominator bound of
// 1e6 and a relative remainder tolerance of 1e-6.
func DefaultRootsOptions() RootsOptions {
	return RootsOptions{
		Options:            DefaultOptions(),
		MaxDenominator:     1_000_000,
		RemainderTolerance: 1e-6,
	}
}

func (o *RootsOptions) validate() error {
	if err := o.Options.validate(); err != nil {
		return err
	}
	if o.MaxDenominator <= 0 || !(o.RemainderTolerance > 0) {
		return ErrBadOptions
	}
	return nil
}
