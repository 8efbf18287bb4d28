package numeric

import (
	"math"
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// Sqrt — type-preserving square root
//
// Description:
//
//	Computes √v while staying inside the exact tower whenever the result
//	is exactly representable, and falling back to float64 otherwise.
//
// Branches:
//  1. Int v ≥ 0      — big.Int integer sqrt; exact iff s·s == v, else float.
//  2. Rat v ≥ 0      — √num/√den recursively; exact iff both legs are exact.
//  3. Decimal v ≥ 0  — apd Context.Sqrt with precision scaled to v.
//  4. Float v ≥ 0    — math.Sqrt.
//  5. Negative real  — i·√(-v), recursing on the magnitude.
//  6. Complex        — component formula: with abs = √(re²+im²),
//     x = √((re+abs)/2), y = √((abs-re)/2), result x + sign(im)·y·i.
//     Exactness survives only while every intermediate stays exact.
//
// Errors:
//   - ErrUnsupported — v is the zero Value.
func Sqrt(v Value) (Value, error) {
	switch v.kind {
	case KindInt, KindRat, KindFloat, KindDecimal:
		if v.Sign() < 0 {
			mag, err := Sqrt(Neg(v))
			if err != nil {
				return Value{}, err
			}
			return Complex(Int(0), mag), nil
		}
		return sqrtNonNegReal(v), nil
	case KindComplex:
		return sqrtComplex(v), nil
	default:
		return Value{}, ErrUnsupported
	}
}

// sqrtNonNegReal handles the v ≥ 0 real branches.
func sqrtNonNegReal(v Value) Value {
	switch v.kind {
	case KindInt:
		s := new(big.Int).Sqrt(v.i)
		if new(big.Int).Mul(s, s).Cmp(v.i) == 0 {
			return Value{kind: KindInt, i: s}
		}
		return Float(math.Sqrt(v.Float64()))
	case KindRat:
		sn := sqrtNonNegReal(BigInt(v.r.Num()))
		sd := sqrtNonNegReal(BigInt(v.r.Denom()))
		if sn.kind == KindInt && sd.kind == KindInt {
			return normalize(Value{kind: KindRat, r: new(big.Rat).SetFrac(sn.i, sd.i)})
		}
		return Float(math.Sqrt(v.Float64()))
	case KindDecimal:
		ctx := decimalCtx(v.d, v.d)
		res := new(apd.Decimal)
		if _, err := ctx.Sqrt(res, v.d); err != nil {
			return Float(math.Sqrt(v.Float64()))
		}
		return BigDecimal(res)
	default: // KindFloat
		return Float(math.Sqrt(v.f))
	}
}

// sqrtComplex applies the component formula. The two radicands are
// mathematically non-negative; float rounding can push them a hair below
// zero, in which case the offending component is exactly zero.
func sqrtComplex(v Value) Value {
	re, im := v.Real(), v.Imag()
	abs := sqrtNonNegReal(clampNonNeg(Add(Mul(re, re), Mul(im, im))))
	two := Int(2)

	xr, _ := Div(Add(re, abs), two)
	yr, _ := Div(Sub(abs, re), two)
	x := sqrtNonNegReal(clampNonNeg(xr))
	y := sqrtNonNegReal(clampNonNeg(yr))
	if im.Sign() < 0 {
		y = Neg(y)
	}
	if y.IsZero() {
		return x
	}
	return Complex(x, y)
}

// clampNonNeg zeroes a rounding-induced negative radicand.
func clampNonNeg(v Value) Value {
	if v.Sign() < 0 {
		return Int(0)
	}
	return v
}

// Abs returns |v| as a tower value: exact for exact real input, the
// (possibly inexact) √(re²+im²) for complex input.
func Abs(v Value) Value {
	mustValid(v)
	if v.kind == KindComplex {
		return sqrtNonNegReal(clampNonNeg(Add(Mul(*v.re, *v.re), Mul(*v.im, *v.im))))
	}
	if v.Sign() < 0 {
		return Neg(v)
	}
	return v
}

// AbsFloat returns the float64 magnitude of v; NaN for the zero Value.
// This is the comparison key used by the iterative root finder.
func AbsFloat(v Value) float64 {
	switch v.kind {
	case KindComplex:
		return math.Hypot(v.re.Float64(), v.im.Float64())
	case KindInvalid:
		return math.NaN()
	default:
		return math.Abs(v.Float64())
	}
}
