package numeric

import (
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// Arithmetic over the tower. Operands are promoted pairwise:
//
//	complex contact → component-wise on real parts;
//	float contact   → float64;
//	decimal+decimal → apd with widened precision;
//	decimal+int/rat → exact rational (a finite decimal is a ratio with a
//	                  power-of-ten denominator, so no precision is lost);
//	rat contact     → big.Rat;
//	int+int         → big.Int.
//
// Every result is normalized before it is returned.

// Neg returns -v.
func Neg(v Value) Value {
	mustValid(v)
	switch v.kind {
	case KindInt:
		return Value{kind: KindInt, i: new(big.Int).Neg(v.i)}
	case KindRat:
		return Value{kind: KindRat, r: new(big.Rat).Neg(v.r)}
	case KindFloat:
		return Float(-v.f)
	case KindDecimal:
		return normalize(Value{kind: KindDecimal, d: new(apd.Decimal).Neg(v.d)})
	default: // KindComplex
		return Complex(Neg(*v.re), Neg(*v.im))
	}
}

// Add returns a + b.
func Add(a, b Value) Value {
	mustValid(a, b)
	switch {
	case a.kind == KindComplex || b.kind == KindComplex:
		re := Add(a.Real(), b.Real())
		im := Add(a.Imag(), b.Imag())
		if im.IsZero() {
			return re
		}
		return Complex(re, im)
	case a.kind == KindFloat || b.kind == KindFloat:
		return Float(a.Float64() + b.Float64())
	case a.kind == KindDecimal && b.kind == KindDecimal:
		ctx := decimalCtx(a.d, b.d)
		res := new(apd.Decimal)
		if _, err := ctx.Add(res, a.d, b.d); err != nil {
			return Float(a.Float64() + b.Float64())
		}
		return BigDecimal(res)
	case a.kind == KindInt && b.kind == KindInt:
		return Value{kind: KindInt, i: new(big.Int).Add(a.i, b.i)}
	default:
		return normalize(Value{kind: KindRat, r: new(big.Rat).Add(toRat(a), toRat(b))})
	}
}

// Sub returns a - b.
func Sub(a, b Value) Value {
	return Add(a, Neg(b))
}

// Mul returns a · b.
func Mul(a, b Value) Value {
	mustValid(a, b)
	switch {
	case a.kind == KindComplex || b.kind == KindComplex:
		ar, ai := a.Real(), a.Imag()
		br, bi := b.Real(), b.Imag()
		re := Sub(Mul(ar, br), Mul(ai, bi))
		im := Add(Mul(ar, bi), Mul(ai, br))
		if im.IsZero() {
			return re
		}
		return Complex(re, im)
	case a.kind == KindFloat || b.kind == KindFloat:
		return Float(a.Float64() * b.Float64())
	case a.kind == KindDecimal && b.kind == KindDecimal:
		ctx := decimalCtx(a.d, b.d)
		res := new(apd.Decimal)
		if _, err := ctx.Mul(res, a.d, b.d); err != nil {
			return Float(a.Float64() * b.Float64())
		}
		return BigDecimal(res)
	case a.kind == KindInt && b.kind == KindInt:
		return Value{kind: KindInt, i: new(big.Int).Mul(a.i, b.i)}
	default:
		return normalize(Value{kind: KindRat, r: new(big.Rat).Mul(toRat(a), toRat(b))})
	}
}

// Div returns a / b.
//
// Exact÷exact stays exact: Int÷Int and any rational contact go through
// big.Rat, so 1÷3 is the rational 1/3, not 0.333…; decimal÷decimal rounds
// to the widened apd context precision. A zero divisor always yields
// ErrDivisionByZero: normalization collapses every zero to the exact
// integer 0 before the kind dispatch runs, so no IEEE-754 ±Inf escape
// hatch exists here.
func Div(a, b Value) (Value, error) {
	mustValid(a, b)
	if b.IsExact() && b.IsZero() {
		return Value{}, ErrDivisionByZero
	}
	switch {
	case a.kind == KindComplex || b.kind == KindComplex:
		return divComplex(a, b)
	case a.kind == KindFloat || b.kind == KindFloat:
		return Float(a.Float64() / b.Float64()), nil
	case a.kind == KindDecimal && b.kind == KindDecimal:
		ctx := decimalCtx(a.d, b.d)
		res := new(apd.Decimal)
		if _, err := ctx.Quo(res, a.d, b.d); err != nil {
			return Float(a.Float64() / b.Float64()), nil
		}
		return BigDecimal(res), nil
	default:
		return normalize(Value{kind: KindRat, r: new(big.Rat).Quo(toRat(a), toRat(b))}), nil
	}
}

// divComplex divides with at least one complex operand. Fully exact
// operands use the conjugate formula so Gaussian-rational quotients stay
// exact; any float contact falls back to complex128.
func divComplex(a, b Value) (Value, error) {
	if a.IsExact() && b.IsExact() {
		ar, ai := a.Real(), a.Imag()
		br, bi := b.Real(), b.Imag()
		// |b|² > 0: an exact zero b was rejected by the caller.
		den := Add(Mul(br, br), Mul(bi, bi))
		re, err := Div(Add(Mul(ar, br), Mul(ai, bi)), den)
		if err != nil {
			return Value{}, err
		}
		im, err := Div(Sub(Mul(ai, br), Mul(ar, bi)), den)
		if err != nil {
			return Value{}, err
		}
		if im.IsZero() {
			return re, nil
		}
		return Complex(re, im), nil
	}
	return FromComplex128(a.Complex128() / b.Complex128()), nil
}

// toRat converts an exact real value to big.Rat. Callers guarantee the
// kind is Int, Rat or Decimal.
func toRat(v Value) *big.Rat {
	switch v.kind {
	case KindInt:
		return new(big.Rat).SetInt(v.i)
	case KindRat:
		return new(big.Rat).Set(v.r)
	case KindDecimal:
		return decToRat(v.d)
	default:
		panic("numeric: toRat on non-exact value")
	}
}

// decToRat expresses a finite decimal as coeff·10^exp exactly.
func decToRat(d *apd.Decimal) *big.Rat {
	coeff := new(big.Int).Set(d.Coeff.MathBigInt())
	if d.Negative {
		coeff.Neg(coeff)
	}
	if d.Exponent >= 0 {
		coeff.Mul(coeff, pow10(int64(d.Exponent)))
		return new(big.Rat).SetInt(coeff)
	}
	return new(big.Rat).SetFrac(coeff, pow10(int64(-d.Exponent)))
}

func pow10(n int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(n), nil)
}

// decimalCtx widens the working precision so that sums and products of
// the operands round only far beyond their own significant digits.
func decimalCtx(ds ...*apd.Decimal) *apd.Context {
	digits := int64(0)
	for _, d := range ds {
		digits += d.NumDigits()
	}
	p := digits + 20
	if p < 34 {
		p = 34
	}
	if p > 10000 {
		p = 10000
	}
	return apd.BaseContext.WithPrecision(uint32(p))
}
