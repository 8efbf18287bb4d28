package solve

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/polyroot/numeric"
	"github.com/katalvlaran/polyroot/poly"
)

// deflationSeed is the fixed nonzero complex starting point for every
// deflation search. Nonzero parts on both axes keep the search off the
// real-axis symmetry line, so conjugate pairs are reachable; the exact
// value is arbitrary but stable for reproducibility.
var deflationSeed = numeric.Complex(numeric.Float(0.4), numeric.Float(0.9))

// Roots — full root set by deflation
//
// Description:
//
//	Produces all degree(c) roots of the polynomial with coefficient
//	vector c (index 0 = highest degree term). Degrees ≤ 2 are solved in
//	closed form; higher degrees repeatedly find one root with FindRoot,
//	divide its monomial (x - root) out with synthetic division, and
//	recurse on the quotient until a quadratic remains.
//
// Algorithm Outline:
//  1. Trim leading zeros; degree ≤ 0 → ErrDegreeZero.
//  2. Degree 1 → -c₁/c₀. Degree 2 → Quadratic.
//  3. While degree > 2:
//     a. find one root from the fixed complex seed;
//     b. if the polynomial is exact-typed, try a bounded-denominator
//     rational snap of the root, kept only when the exact
//     re-evaluation is exactly zero;
//     c. divide (x - root) out; the quotient degree must strictly
//     decrease and the remainder must be negligible (relative to the
//     largest dividend coefficient), else ErrDeflation;
//     d. append the root, continue on the quotient.
//  4. Solve the final degree ≤ 2 piece analytically.
//  5. Sort all roots by real part, then imaginary part.
//
// Errors:
//   - ErrDegreeZero    — constant (or zero/empty) polynomial.
//   - ErrNoConvergence — a deflation step's search ran out of budget.
//   - ErrDeflation     — deflation produced an inconsistent quotient or
//     remainder (internal invariant, not a malformed input).
func Roots(coeffs []numeric.Value, opts *RootsOptions) ([]numeric.Value, error) {
	o := DefaultRootsOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	work := poly.Trim(coeffs)
	if len(work) <= 1 {
		return nil, ErrDegreeZero
	}
	exact := poly.IsExact(work)
	roots := make([]numeric.Value, 0, len(work)-1)

	for poly.Degree(work) > 2 {
		p := work
		f := func(v numeric.Value) numeric.Value { return poly.Eval(p, v) }

		root, err := FindRoot(deflationSeed, f, &o.Options)
		if err != nil {
			return nil, fmt.Errorf("deflating degree %d: %w", poly.Degree(work), err)
		}
		if exact {
			if snapped, ok := numeric.Rationalize(root, o.MaxDenominator); ok {
				if poly.Eval(work, snapped).IsZero() {
					root = snapped
				}
			}
		}

		quotient, remainder, err := Divide(work, []numeric.Value{numeric.Int(1), numeric.Neg(root)})
		if err != nil {
			return nil, err
		}
		if poly.Degree(quotient) >= poly.Degree(work) {
			return nil, fmt.Errorf("%w: quotient degree %d did not decrease from %d",
				ErrDeflation, poly.Degree(quotient), poly.Degree(work))
		}
		if !remainderNegligible(remainder, work, o.RemainderTolerance) {
			return nil, fmt.Errorf("%w: remainder %v left after dividing out %v",
				ErrDeflation, remainder[len(remainder)-1], root)
		}

		roots = append(roots, root)
		work = poly.Trim(quotient)
	}

	switch poly.Degree(work) {
	case 1:
		x, err := numeric.Div(numeric.Neg(work[1]), work[0])
		if err != nil {
			return nil, err
		}
		roots = append(roots, x)
	case 2:
		pair, err := Quadratic(work[0], work[1], work[2])
		if err != nil {
			return nil, err
		}
		roots = append(roots, pair...)
	}

	sortRoots(roots)
	return roots, nil
}

// remainderNegligible compares the remainder against the dividend's
// coefficient scale: an approximate root never divides out exactly, so
// "zero" means small relative to max(1, largest |coefficient|).
func remainderNegligible(remainder, dividend []numeric.Value, tol float64) bool {
	scale := 1.0
	for _, c := range dividend {
		scale = math.Max(scale, numeric.AbsFloat(c))
	}
	for _, r := range remainder {
		if numeric.AbsFloat(r) > tol*scale {
			return false
		}
	}
	return true
}

// sortRoots orders by real part, then imaginary part, for deterministic
// output across runs.
func sortRoots(roots []numeric.Value) {
	sort.SliceStable(roots, func(i, j int) bool {
		ri, rj := roots[i].Real().Float64(), roots[j].Real().Float64()
		if ri != rj {
			return ri < rj
		}
		return roots[i].Imag().Float64() < roots[j].Imag().Float64()
	})
}
