package numeric_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/polyroot/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSqrt_ExactIntegers: √(n²) must come back as exactly n for every
// tested non-negative integer.
func TestSqrt_ExactIntegers(t *testing.T) {
	for n := int64(0); n <= 50; n++ {
		s, err := numeric.Sqrt(numeric.Int(n * n))
		require.NoError(t, err)
		assert.Equal(t, numeric.KindInt, s.Kind(), "sqrt(%d^2)", n)
		assert.Equal(t, numeric.Int(n).String(), s.String())
	}
}

// TestSqrt_ExactRationals: √(p²/q²) of a reduced rational is exactly p/q.
func TestSqrt_ExactRationals(t *testing.T) {
	cases := [][2]int64{{3, 2}, {7, 5}, {11, 13}, {1, 9}}
	for _, pq := range cases {
		p, q := pq[0], pq[1]
		s, err := numeric.Sqrt(numeric.Rat(p*p, q*q))
		require.NoError(t, err)
		assert.Equal(t, numeric.Rat(p, q).String(), s.String())
	}
}

// TestSqrt_FloatFallback: non-squares fall back to float64.
func TestSqrt_FloatFallback(t *testing.T) {
	s, err := numeric.Sqrt(numeric.Int(2))
	require.NoError(t, err)
	assert.Equal(t, numeric.KindFloat, s.Kind())
	assert.InDelta(t, math.Sqrt2, s.Float64(), 1e-15)

	s, err = numeric.Sqrt(numeric.Rat(1, 2))
	require.NoError(t, err)
	assert.Equal(t, numeric.KindFloat, s.Kind())
	assert.InDelta(t, math.Sqrt(0.5), s.Float64(), 1e-15)
}

// TestSqrt_NegativeReal: √(-v) = i·√v across the real kinds.
func TestSqrt_NegativeReal(t *testing.T) {
	s, err := numeric.Sqrt(numeric.Int(-4))
	require.NoError(t, err)
	assert.Equal(t, "0+2i", s.String())

	s, err = numeric.Sqrt(numeric.Rat(-9, 4))
	require.NoError(t, err)
	assert.Equal(t, "0+3/2i", s.String())

	s, err = numeric.Sqrt(numeric.Float(-2.0))
	require.NoError(t, err)
	assert.Equal(t, numeric.KindComplex, s.Kind())
	assert.InDelta(t, math.Sqrt2, s.Imag().Float64(), 1e-15)
	assert.True(t, s.Real().IsZero())
}

// TestSqrt_Complex: the component formula stays exact while every
// intermediate stays exact — √(3+4i) = 2+i — and degrades to floats
// beyond that boundary (documented, not solved; see the package doc).
func TestSqrt_Complex(t *testing.T) {
	s, err := numeric.Sqrt(numeric.Complex(numeric.Int(3), numeric.Int(4)))
	require.NoError(t, err)
	assert.Equal(t, "2+1i", s.String())

	s, err = numeric.Sqrt(numeric.Complex(numeric.Int(3), numeric.Int(-4)))
	require.NoError(t, err)
	assert.Equal(t, "2-1i", s.String())

	// 2i squares to -4+0i... sqrt(-4+3i) has irrational components:
	// verify numerically against complex128.
	s, err = numeric.Sqrt(numeric.Complex(numeric.Int(-4), numeric.Int(3)))
	require.NoError(t, err)
	sq := numeric.Mul(s, s)
	assert.InDelta(t, -4, sq.Real().Float64(), 1e-12)
	assert.InDelta(t, 3, sq.Imag().Float64(), 1e-12)
}

// TestSqrt_Decimal uses the native extended-precision decimal sqrt.
func TestSqrt_Decimal(t *testing.T) {
	d, err := numeric.Decimal("2.25")
	require.NoError(t, err)
	s, err := numeric.Sqrt(d)
	require.NoError(t, err)
	assert.Equal(t, numeric.KindDecimal, s.Kind())
	assert.Equal(t, "1.5", s.String())

	neg, err := numeric.Decimal("-2.25")
	require.NoError(t, err)
	s, err = numeric.Sqrt(neg)
	require.NoError(t, err)
	assert.Equal(t, "0+1.5i", s.String())
}

// TestSqrt_Unsupported pins the DomainError for the zero Value.
func TestSqrt_Unsupported(t *testing.T) {
	_, err := numeric.Sqrt(numeric.Value{})
	assert.ErrorIs(t, err, numeric.ErrUnsupported)
}

// TestAbs covers both magnitude helpers.
func TestAbs(t *testing.T) {
	assert.Equal(t, "3", numeric.Abs(numeric.Int(-3)).String())
	assert.Equal(t, "3/4", numeric.Abs(numeric.Rat(-3, 4)).String())

	// |3+4i| = 5, exact.
	z := numeric.Complex(numeric.Int(3), numeric.Int(4))
	assert.Equal(t, "5", numeric.Abs(z).String())
	assert.Equal(t, 5.0, numeric.AbsFloat(z))

	assert.Equal(t, 2.5, numeric.AbsFloat(numeric.Float(-2.5)))
	assert.True(t, math.IsNaN(numeric.AbsFloat(numeric.Value{})))
}
