package solve

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/polyroot/numeric"
)

// maxMultiplicityDepth caps the multiplicity-correction recursion.
// A doubly-nested f/f′ search already reduces any realistic repeated
// root to a simple one; anything deeper is runaway recursion.
const maxMultiplicityDepth = 2

// FindRoot — multi-strategy search for one root of f
//
// Description:
//
//	Locates one approximate root of the scalar function f starting from
//	guess, by running a fixed-order ensemble of strategies:
//
//	  1. finite-difference Newton (adaptive step, sub-epsilon creep after
//	     each step, random-search substitution on a vanishing or
//	     non-finite derivative),
//	  2. deterministic seeded random search,
//	  3. multiplicity correction (recursive search on f/f′, depth < 2),
//	  4. secant between the original guess and the current best,
//	  5. ULP-lattice creep around the estimate,
//	  6. rounding snap to successively coarser decimal precisions.
//
//	A candidate replaces the current estimate only on a strict decrease
//	of |f(x)| (or a non-finite → finite flip), and the whole search stops
//	immediately whenever f(x) is exactly zero. The ensemble order is
//	fixed and the random strategy is reseeded from the current estimate,
//	so identical inputs reproduce identical results bit for bit.
//
// Errors:
//   - ErrBadOptions    — nil f, invalid guess, or non-positive budgets.
//   - ErrNoConvergence — the loop budget ran out with |f(x)| or the last
//     step still above Tolerance; the message carries the final
//     estimate, residual and step for diagnostics.
func FindRoot(guess numeric.Value, f Func, opts *Options) (numeric.Value, error) {
	if f == nil {
		return numeric.Value{}, fmt.Errorf("%w: nil function", ErrBadOptions)
	}
	if !guess.IsValid() {
		return numeric.Value{}, fmt.Errorf("%w: invalid guess", ErrBadOptions)
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return numeric.Value{}, err
	}

	fn := func(z complex128) complex128 {
		return f(numeric.FromComplex128(z)).Complex128()
	}
	st := newSearch(fn, &o, 0, guess.Complex128())
	st.run()

	x := numeric.FromComplex128(st.x)
	if !st.settled() {
		return x, fmt.Errorf("%w: x=%v |f(x)|=%.3g step=%.3g",
			ErrNoConvergence, x, st.absY(), st.step)
	}
	return x, nil
}

// search is the transient per-invocation state threaded through the
// strategies: current estimate, its value, the last accepted step and
// the multiplicity-recursion depth. It is never shared across calls.
type search struct {
	fn    func(complex128) complex128
	opts  *Options
	depth int

	guess complex128 // original starting point, kept for the secant pass
	x     complex128 // current estimate
	y     complex128 // f(x)
	step  float64    // magnitude of the last accepted move; 0 until one happens
}

func newSearch(fn func(complex128) complex128, opts *Options, depth int, guess complex128) *search {
	return &search{fn: fn, opts: opts, depth: depth, guess: guess, x: guess, y: fn(guess)}
}

// run executes the ensemble loops. Each strategy checks done() itself;
// a loop that moves the estimate nowhere ends the search early.
func (s *search) run() {
	for loop := 0; loop < s.opts.Loops && !s.done(); loop++ {
		before := s.x
		s.newton()
		s.randomSearch(s.opts.Iterations)
		s.multiplicity()
		s.secant()
		s.creep()
		s.snap()
		if s.x == before {
			// Stalled: no strategy can move the estimate, so the search's
			// displacement is exactly zero regardless of how large the
			// last accepted move was.
			s.step = 0
			break
		}
	}
}

func (s *search) absY() float64 { return cmplx.Abs(s.y) }

func (s *search) zero() bool { return s.y == 0 }

// done reports early-termination: an exact zero, or a residual below
// tolerance² with the last step already inside tolerance.
func (s *search) done() bool {
	if s.zero() {
		return true
	}
	tol := s.opts.Tolerance
	return s.absY() < tol*tol && s.step < tol
}

// settled is the end-of-search verdict at depth 0: success means an
// exact zero, or residual and final displacement both within tolerance.
func (s *search) settled() bool {
	if s.zero() {
		return true
	}
	tol := s.opts.Tolerance
	return s.absY() <= tol && s.step <= tol
}

// accept evaluates a candidate and adopts it only on a strict
// improvement of |f| or a non-finite → finite flip of the value.
func (s *search) accept(cand complex128) bool {
	fc := s.fn(cand)
	improved := cmplx.Abs(fc) < s.absY() || (!isFinite(s.y) && isFinite(fc))
	if !improved {
		return false
	}
	s.step = cmplx.Abs(cand - s.x)
	s.x, s.y = cand, fc
	return true
}

// adopt replaces the state unconditionally; used when a sub-search has
// already proven the candidate better.
func (s *search) adopt(cand, fc complex128) {
	s.step = cmplx.Abs(cand - s.x)
	s.x, s.y = cand, fc
}

func isFinite(z complex128) bool {
	return !math.IsNaN(real(z)) && !math.IsInf(real(z), 0) &&
		!math.IsNaN(imag(z)) && !math.IsInf(imag(z), 0)
}
