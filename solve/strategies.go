package solve

import (
	"math"
	"math/cmplx"
)

// Strategy constants. The ratios and windows are fixed by design: the
// ensemble must be reproducible, so nothing here adapts to wall time or
// global state.
const (
	// fdStepRatio scales the symmetric-difference step to the magnitude
	// of the evaluation point.
	fdStepRatio = 1e-7

	// fdShrinkTries bounds how often the difference step is shrunk when
	// the quotient comes back zero or non-finite.
	fdShrinkTries = 8

	// randomRatio is the relative half-width of the multiplicative
	// perturbation window of the random strategy.
	randomRatio = 0.5

	// nearZero is the magnitude below which the random strategy switches
	// from relative perturbation to absolute-window sampling.
	nearZero = 1e-8

	// creepRadius is the ULP lattice half-width of the creep strategy.
	creepRadius = 3

	// snapMaxDigits is the finest decimal precision the rounding snap
	// starts from before coarsening toward whole numbers.
	snapMaxDigits = 12
)

// newton runs finite-difference Newton iteration with a sub-epsilon
// creep correction after every step. A vanishing or non-finite
// derivative is bridged by a bounded run of the random strategy. An
// iteration that neither steps nor creeps cannot make further progress
// and ends the pass.
func (s *search) newton() {
	for i := 0; i < s.opts.Iterations && !s.done(); i++ {
		d, ok := fdDerivative(s.fn, s.x)
		if !ok {
			s.randomSearch(s.opts.Iterations / 5)
			continue
		}
		stepped := s.accept(s.x - s.y/d)
		crept := s.creepLattice(1)
		if !stepped && !crept {
			break
		}
	}
}

// randomSearch probes perturbations of the current estimate using the
// stream seeded from the estimate's bit pattern, so a repeated call at
// the same point replays the same candidates. Perturbations are scaled
// by a fixed ratio of the current value; near zero (or from a
// non-finite estimate) it samples the advisory absolute window instead.
func (s *search) randomSearch(budget int) {
	rng := rngForEstimate(s.x)
	reLo, reHi := windowOf(s.opts.RealRange)
	imLo, imHi := windowOf(s.opts.ImagRange)
	for i := 0; i < budget && !s.done(); i++ {
		var cand complex128
		if isFinite(s.x) && cmplx.Abs(s.x) > nearZero {
			dr := (rng.Float64() - 0.5) * 2 * randomRatio
			di := (rng.Float64() - 0.5) * 2 * randomRatio
			cand = s.x * complex(1+dr, di)
		} else {
			cand = complex(reLo+rng.Float64()*(reHi-reLo), imLo+rng.Float64()*(imHi-imLo))
		}
		s.accept(cand)
	}
}

// windowOf turns an advisory range into a usable sampling window,
// falling back to [-1, 1] when the range is empty.
func windowOf(r [2]float64) (lo, hi float64) {
	lo, hi = r[0], r[1]
	if !(lo < hi) {
		return -1, 1
	}
	return lo, hi
}

// multiplicity handles repeated roots: when the derivative magnitude
// sinks below tolerance² while the value is still nonzero and the last
// step has not yet met tolerance, the search recurses (depth < 2) on
// g = f/f′ — which has a simple root where f has a repeated one — or on
// f′/f″ when the first derivative vanishes too. A failed recursive
// search is swallowed and the original state kept.
func (s *search) multiplicity() {
	tol := s.opts.Tolerance
	if s.depth >= maxMultiplicityDepth || s.zero() || s.step <= tol {
		return
	}
	if d, ok := fdDerivative(s.fn, s.x); ok && cmplx.Abs(d) >= tol*tol {
		return
	}

	g := func(z complex128) complex128 {
		fz := s.fn(z)
		d1 := rawDerivative(s.fn, z)
		if d1 != 0 && isFinite(d1) {
			return fz / d1
		}
		// f′ vanishes here too: fall back to the f′/f″ ratio, which has
		// its simple root where f′ does.
		d2, ok := fdSecond(s.fn, z)
		if !ok {
			return fz
		}
		return d1 / d2
	}

	sub := newSearch(g, s.opts, s.depth+1, s.x)
	sub.run()

	fc := s.fn(sub.x)
	if cmplx.Abs(fc) < s.absY() || (!isFinite(s.y) && isFinite(fc)) {
		s.adopt(sub.x, fc)
	}
}

// secant runs the classic two-point method between the original guess
// and the current best estimate. Skipped once both the residual and the
// last step are already inside tolerance.
func (s *search) secant() {
	tol := s.opts.Tolerance
	if s.absY() <= tol && s.step <= tol {
		return
	}
	x0, x1 := s.guess, s.x
	y0, y1 := s.fn(x0), s.y
	for i := 0; i < s.opts.Iterations && !s.done(); i++ {
		den := y1 - y0
		if den == 0 || !isFinite(den) {
			return
		}
		x2 := x1 - y1*(x1-x0)/den
		if !isFinite(x2) || x2 == x1 {
			return
		}
		s.accept(x2)
		x0, y0 = x1, y1
		x1, y1 = x2, s.fn(x2)
	}
}

// creep probes the full ±creepRadius ULP lattice around the estimate.
func (s *search) creep() {
	for s.creepLattice(creepRadius) && !s.done() {
	}
}

// creepLattice evaluates the nearest-representable lattice around x
// (±radius ULPs independently per axis; the imaginary axis is left
// untouched while the estimate is purely real) and adopts the best
// strict improvement. Reports whether the estimate moved.
func (s *search) creepLattice(radius int) bool {
	var (
		best    complex128
		bestY   complex128
		bestAbs = s.absY()
		found   bool
	)
	re, im := real(s.x), imag(s.x)
	for dr := -radius; dr <= radius; dr++ {
		for di := -radius; di <= radius; di++ {
			if dr == 0 && di == 0 {
				continue
			}
			if im == 0 && di != 0 {
				continue
			}
			cand := complex(ulpStep(re, dr), ulpStep(im, di))
			fc := s.fn(cand)
			if a := cmplx.Abs(fc); a < bestAbs {
				best, bestY, bestAbs, found = cand, fc, a, true
			}
		}
	}
	if !found {
		return false
	}
	s.step = cmplx.Abs(best - s.x)
	s.x, s.y = best, bestY
	return true
}

// ulpStep moves v by n representable values (n may be negative).
func ulpStep(v float64, n int) float64 {
	for ; n > 0; n-- {
		v = math.Nextafter(v, math.Inf(1))
	}
	for ; n < 0; n++ {
		v = math.Nextafter(v, math.Inf(-1))
	}
	return v
}

// snap tries rounding the estimate to successively coarser decimal
// precisions, recovering exact integer or short-decimal roots lost to
// floating drift. Equal-or-better values are accepted, so a rounded
// point with the same residual still wins over an unrounded one.
func (s *search) snap() {
	for digits := snapMaxDigits; digits >= 0 && !s.zero(); digits-- {
		cand := complex(roundTo(real(s.x), digits), roundTo(imag(s.x), digits))
		if cand == s.x {
			continue
		}
		fc := s.fn(cand)
		if cmplx.Abs(fc) <= s.absY() {
			s.adopt(cand, fc)
		}
	}
}

// roundTo rounds to the given number of decimal digits; magnitudes at or
// beyond 1e15 (and non-finite values) pass through untouched.
func roundTo(v float64, digits int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) >= 1e15 {
		return v
	}
	p := math.Pow10(digits)
	return math.Round(v*p) / p
}

// rawDerivative is the plain symmetric difference quotient at the base
// step; it may come back zero or non-finite.
func rawDerivative(fn func(complex128) complex128, z complex128) complex128 {
	hc := complex(fdStepRatio*math.Max(1, cmplx.Abs(z)), 0)
	return (fn(z+hc) - fn(z-hc)) / (2 * hc)
}

// fdDerivative approximates f′(z) by a symmetric difference with an
// adaptively shrinking step. Reports false when no usable (finite,
// nonzero) quotient is found.
func fdDerivative(fn func(complex128) complex128, z complex128) (complex128, bool) {
	h := fdStepRatio * math.Max(1, cmplx.Abs(z))
	for try := 0; try < fdShrinkTries; try++ {
		hc := complex(h, 0)
		d := (fn(z+hc) - fn(z-hc)) / (2 * hc)
		if d != 0 && isFinite(d) {
			return d, true
		}
		h /= 16
	}
	return 0, false
}

// fdSecond approximates f″(z) by the central second difference. The
// wider step trades accuracy for noise immunity; only the multiplicity
// fallback consumes it.
func fdSecond(fn func(complex128) complex128, z complex128) (complex128, bool) {
	h := 1e-5 * math.Max(1, cmplx.Abs(z))
	hc := complex(h, 0)
	d := (fn(z+hc) - 2*fn(z) + fn(z-hc)) / (hc * hc)
	if d != 0 && isFinite(d) {
		return d, true
	}
	return 0, false
}
