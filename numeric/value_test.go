package numeric_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/katalvlaran/polyroot/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConstructors_Normalize verifies that every constructor collapses
// its result to the simplest exact representation.
func TestConstructors_Normalize(t *testing.T) {
	assert.Equal(t, numeric.KindInt, numeric.Int(7).Kind())

	// denominator 1 collapses to an integer
	assert.Equal(t, numeric.KindInt, numeric.Rat(8, 4).Kind())
	assert.Equal(t, "2", numeric.Rat(8, 4).String())

	// reduced, positive denominator
	assert.Equal(t, "-3/4", numeric.Rat(6, -8).String())

	// exactly integral floats collapse
	assert.Equal(t, numeric.KindInt, numeric.Float(3.0).Kind())
	assert.Equal(t, numeric.KindFloat, numeric.Float(3.5).Kind())

	// NaN and Inf stay floats
	assert.Equal(t, numeric.KindFloat, numeric.Float(math.NaN()).Kind())
	assert.False(t, numeric.Float(math.Inf(1)).IsFinite())

	// integral decimals collapse, fractional ones stay decimal
	d, err := numeric.Decimal("4.00")
	require.NoError(t, err)
	assert.Equal(t, numeric.KindInt, d.Kind())
	d, err = numeric.Decimal("2.5")
	require.NoError(t, err)
	assert.Equal(t, numeric.KindDecimal, d.Kind())

	// a zero imaginary part collapses a complex to its real part
	assert.Equal(t, numeric.KindInt, numeric.Complex(numeric.Int(3), numeric.Int(0)).Kind())
	assert.Equal(t, numeric.KindComplex, numeric.Complex(numeric.Int(3), numeric.Int(1)).Kind())
}

// TestValue_Accessors covers the conversion and inspection surface.
func TestValue_Accessors(t *testing.T) {
	z := numeric.Complex(numeric.Rat(1, 2), numeric.Int(-2))
	assert.Equal(t, "1/2-2i", z.String())
	assert.Equal(t, complex(0.5, -2), z.Complex128())
	assert.Equal(t, "1/2", z.Real().String())
	assert.Equal(t, "-2", z.Imag().String())
	assert.True(t, z.IsExact())
	assert.False(t, z.IsZero())

	assert.Equal(t, 0.25, numeric.Rat(1, 4).Float64())
	assert.True(t, numeric.Int(0).IsZero())
	assert.True(t, numeric.Rat(0, 5).IsZero())

	assert.Equal(t, 1, numeric.Float(2.5).Sign())
	assert.Equal(t, -1, numeric.Int(-3).Sign())
	assert.Equal(t, 0, numeric.Int(0).Sign())

	big2 := numeric.BigInt(big.NewInt(1).Lsh(big.NewInt(1), 70))
	assert.InEpsilon(t, math.Pow(2, 70), big2.Float64(), 1e-12)
}

// TestFromComplex128 checks the collapse rules on conversion back into
// the tower.
func TestFromComplex128(t *testing.T) {
	assert.Equal(t, numeric.KindInt, numeric.FromComplex128(complex(2, 0)).Kind())
	assert.Equal(t, numeric.KindFloat, numeric.FromComplex128(complex(2.5, 0)).Kind())
	assert.Equal(t, numeric.KindComplex, numeric.FromComplex128(complex(2, 1)).Kind())
}

// TestValue_ZeroValuePanics pins the programmer-error contract.
func TestValue_ZeroValuePanics(t *testing.T) {
	assert.Panics(t, func() { numeric.Add(numeric.Value{}, numeric.Int(1)) })
	assert.Panics(t, func() { numeric.Rat(1, 0) })
	assert.Panics(t, func() { numeric.Complex(numeric.Int(1), numeric.Value{}) })
}
