package solve

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// septic is w⁷ around 1: at w ≈ 1e-5 the finite-difference derivative
// (≈ 7e-30) sinks below tolerance² while the value stays nonzero, which
// is exactly the multiplicity-correction trigger.
func septic(z complex128) complex128 {
	w := z - 1
	w2 := w * w
	return w2 * w2 * w2 * w
}

// TestMultiplicity_Recovers: the recursive search on f/f′ jumps from a
// flat shoulder straight onto the repeated root.
func TestMultiplicity_Recovers(t *testing.T) {
	opts := DefaultOptions()
	s := newSearch(septic, &opts, 0, complex(1+1e-5, 0))
	s.step = 1 // pretend the last jump was large, as after a random hop

	d, ok := fdDerivative(septic, s.x)
	require.True(t, !ok || cmplx.Abs(d) < opts.Tolerance*opts.Tolerance,
		"precondition: derivative below tolerance²")

	s.multiplicity()
	assert.Less(t, cmplx.Abs(s.x-1), 1e-7, "estimate should land on the repeated root")
	assert.Less(t, cmplx.Abs(s.y), 1e-30)
}

// TestMultiplicity_SwallowsFailure: when the recursive search cannot do
// better, the original state survives untouched.
func TestMultiplicity_SwallowsFailure(t *testing.T) {
	hopeless := func(z complex128) complex128 { return complex(1, 0) }
	opts := DefaultOptions()
	s := newSearch(hopeless, &opts, 0, complex(3, 0))
	s.step = 1

	x, y := s.x, s.y
	s.multiplicity()
	assert.Equal(t, x, s.x)
	assert.Equal(t, y, s.y)
}

// TestMultiplicity_DepthCap: at the recursion bound the strategy is a
// no-op regardless of the state.
func TestMultiplicity_DepthCap(t *testing.T) {
	opts := DefaultOptions()
	s := newSearch(septic, &opts, maxMultiplicityDepth, complex(1+1e-5, 0))
	s.step = 1

	x := s.x
	s.multiplicity()
	assert.Equal(t, x, s.x)
}

// TestRun_StallSettles: when no strategy can improve a float-precision
// residual any further, the ensemble stall counts as zero displacement
// and the verdict is success, even if the last accepted move was large.
func TestRun_StallSettles(t *testing.T) {
	base := complex(0.7, 0)
	fn := func(z complex128) complex128 {
		if z == base {
			return complex(1e-16, 0)
		}
		return complex(1, 0)
	}
	opts := DefaultOptions()
	s := newSearch(fn, &opts, 0, base)
	s.step = 1.79e-12 // as left behind by the move that landed on base

	s.run()
	assert.Equal(t, base, s.x, "nothing can improve on base")
	assert.Zero(t, s.step, "a stalled loop is zero displacement")
	assert.True(t, s.settled())
}

// TestSeedForEstimate_Deterministic: the RNG seed derives from the
// estimate's bit pattern only.
func TestSeedForEstimate_Deterministic(t *testing.T) {
	a := seedForEstimate(complex(0.4, 0.9))
	b := seedForEstimate(complex(0.4, 0.9))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, seedForEstimate(complex(0.4, 0.90000001)),
		"nearby estimates must decorrelate")
	assert.NotZero(t, seedForEstimate(complex(0, 0)))
}
