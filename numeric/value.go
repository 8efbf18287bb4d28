package numeric

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// Kind tags the representation a Value currently holds.
type Kind uint8

const (
	// KindInvalid is the tag of the zero Value; no operation accepts it.
	KindInvalid Kind = iota

	// KindInt — arbitrary-precision integer.
	KindInt

	// KindRat — exact rational, reduced, denominator > 0.
	KindRat

	// KindFloat — IEEE-754 float64.
	KindFloat

	// KindDecimal — arbitrary-precision decimal (cockroachdb/apd).
	KindDecimal

	// KindComplex — pair of real-valued parts.
	KindComplex
)

// String reports the kind name; used in diagnostics only.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindRat:
		return "rat"
	case KindFloat:
		return "float"
	case KindDecimal:
		return "decimal"
	case KindComplex:
		return "complex"
	default:
		return "invalid"
	}
}

// Value is one number of the tower. Values are immutable: operations never
// modify their operands and the internal pointers are never exposed.
//
// Invariants (maintained by every constructor and operation):
//   - KindRat values are reduced with a positive denominator and a
//     denominator ≠ 1 (denominator 1 collapses to KindInt).
//   - KindFloat values are never exactly integral within ±2⁵³; those
//     collapse to KindInt, so in particular no float zero exists.
//   - KindComplex values have real-valued parts and a nonzero imaginary
//     part (zero imaginary collapses to the real part).
type Value struct {
	kind Kind
	i    *big.Int
	r    *big.Rat
	f    float64
	d    *apd.Decimal
	re   *Value
	im   *Value
}

// Int returns the exact integer v.
func Int(v int64) Value {
	return Value{kind: KindInt, i: big.NewInt(v)}
}

// BigInt returns the exact integer v. The argument is copied.
func BigInt(v *big.Int) Value {
	return Value{kind: KindInt, i: new(big.Int).Set(v)}
}

// Rat returns the exact rational num/den, reduced.
// Panics if den == 0 (programmer error).
func Rat(num, den int64) Value {
	if den == 0 {
		panic("numeric: rational with zero denominator")
	}
	return normalize(Value{kind: KindRat, r: big.NewRat(num, den)})
}

// BigRat returns the exact rational v. The argument is copied.
func BigRat(v *big.Rat) Value {
	return normalize(Value{kind: KindRat, r: new(big.Rat).Set(v)})
}

// Float returns v as a tower value. Exactly integral floats collapse to
// KindInt per the normalization rules; NaN and ±Inf stay floats.
func Float(v float64) Value {
	return normalize(Value{kind: KindFloat, f: v})
}

// Decimal parses an arbitrary-precision decimal literal, e.g. "1.75" or
// "6.02e23". Non-finite literals ("Inf", "NaN") become KindFloat values.
func Decimal(s string) (Value, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Value{}, fmt.Errorf("numeric: parse decimal %q: %w", s, err)
	}
	return BigDecimal(d), nil
}

// BigDecimal returns d as a tower value. The argument is copied.
// Non-finite decimals are demoted to the equivalent float.
func BigDecimal(d *apd.Decimal) Value {
	switch d.Form {
	case apd.Finite:
		return normalize(Value{kind: KindDecimal, d: new(apd.Decimal).Set(d)})
	case apd.Infinite:
		return Value{kind: KindFloat, f: math.Inf(-2*b2i(d.Negative) + 1)}
	default:
		return Value{kind: KindFloat, f: math.NaN()}
	}
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Complex returns re + im·i. Both parts must be real-valued; a zero
// imaginary part collapses the result to re. Panics on invalid or
// complex-kinded parts (programmer error).
func Complex(re, im Value) Value {
	if re.kind == KindInvalid || im.kind == KindInvalid {
		panic("numeric: complex part is the zero Value")
	}
	if re.kind == KindComplex || im.kind == KindComplex {
		panic("numeric: complex parts must be real-valued")
	}
	return normalize(Value{kind: KindComplex, re: &re, im: &im})
}

// FromComplex128 converts z, collapsing a zero imaginary part and
// integral parts per the normalization rules.
func FromComplex128(z complex128) Value {
	if imag(z) == 0 {
		return Float(real(z))
	}
	return Complex(Value{kind: KindFloat, f: real(z)}, Value{kind: KindFloat, f: imag(z)})
}

// Kind reports the representation tag.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v holds any representation.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// IsZero reports whether v is exactly zero.
func (v Value) IsZero() bool {
	switch v.kind {
	case KindInt:
		return v.i.Sign() == 0
	case KindRat:
		return v.r.Sign() == 0
	case KindFloat:
		return v.f == 0
	case KindDecimal:
		return v.d.IsZero()
	case KindComplex:
		return v.re.IsZero() && v.im.IsZero()
	default:
		return false
	}
}

// IsExact reports whether v carries an exact representation (integer,
// rational or decimal; for complex values, both parts).
func (v Value) IsExact() bool {
	switch v.kind {
	case KindInt, KindRat, KindDecimal:
		return true
	case KindComplex:
		return v.re.IsExact() && v.im.IsExact()
	default:
		return false
	}
}

// IsFinite reports whether v is free of NaN and ±Inf components.
func (v Value) IsFinite() bool {
	switch v.kind {
	case KindFloat:
		return !math.IsNaN(v.f) && !math.IsInf(v.f, 0)
	case KindComplex:
		return v.re.IsFinite() && v.im.IsFinite()
	case KindInvalid:
		return false
	default:
		return true
	}
}

// Sign reports -1, 0 or +1 for a real-valued v. NaN reports 0.
// Panics on complex or invalid values (programmer error).
func (v Value) Sign() int {
	switch v.kind {
	case KindInt:
		return v.i.Sign()
	case KindRat:
		return v.r.Sign()
	case KindFloat:
		switch {
		case v.f > 0:
			return 1
		case v.f < 0:
			return -1
		default:
			return 0
		}
	case KindDecimal:
		return v.d.Sign()
	default:
		panic("numeric: Sign of non-real value")
	}
}

// Real returns the real part of v (v itself when real-valued).
func (v Value) Real() Value {
	if v.kind == KindComplex {
		return *v.re
	}
	return v
}

// Imag returns the imaginary part of v (exact zero when real-valued).
func (v Value) Imag() Value {
	if v.kind == KindComplex {
		return *v.im
	}
	return Int(0)
}

// Float64 returns the closest float64 to the real part of v.
func (v Value) Float64() float64 {
	switch v.kind {
	case KindInt:
		f, _ := new(big.Float).SetInt(v.i).Float64()
		return f
	case KindRat:
		f, _ := v.r.Float64()
		return f
	case KindFloat:
		return v.f
	case KindDecimal:
		f, err := v.d.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	case KindComplex:
		return v.re.Float64()
	default:
		return math.NaN()
	}
}

// Complex128 returns the closest complex128 to v.
func (v Value) Complex128() complex128 {
	if v.kind == KindComplex {
		return complex(v.re.Float64(), v.im.Float64())
	}
	return complex(v.Float64(), 0)
}

// String renders v: "42", "3/4", "1.5", "2.50" (decimal), "1+2i", "1-2i".
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return v.i.String()
	case KindRat:
		return v.r.RatString()
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindDecimal:
		return v.d.String()
	case KindComplex:
		im := v.im.String()
		if v.im.Sign() >= 0 {
			return v.re.String() + "+" + im + "i"
		}
		return v.re.String() + im + "i"
	default:
		return "<invalid>"
	}
}

// mustValid guards arithmetic entry points against the zero Value.
func mustValid(vs ...Value) {
	for _, v := range vs {
		if v.kind == KindInvalid {
			panic("numeric: operation on the zero Value")
		}
	}
}
