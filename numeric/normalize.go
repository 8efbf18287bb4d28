package numeric

import (
	"math"
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// maxExactFloat bounds the float→int collapse: beyond 2⁵³ a float64 no
// longer identifies a unique integer.
const maxExactFloat = 1 << 53

// Normalize collapses v to its simplest exact representation:
//
//   - complex with an exactly-zero imaginary part → its real part;
//   - rational with denominator 1 → integer;
//   - float that is exactly integral within ±2⁵³ → integer;
//   - finite decimal with no fractional digits → integer.
//
// Every constructor and arithmetic operation in this package already
// applies these rules; Normalize is exported for callers that build
// Values through other means (e.g. deserialized coefficient vectors).
func Normalize(v Value) Value { return normalize(v) }

func normalize(v Value) Value {
	switch v.kind {
	case KindRat:
		if v.r.IsInt() {
			return Value{kind: KindInt, i: new(big.Int).Set(v.r.Num())}
		}
		return v
	case KindFloat:
		f := v.f
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return v
		}
		if f == math.Trunc(f) && math.Abs(f) <= maxExactFloat {
			return Value{kind: KindInt, i: big.NewInt(int64(f))}
		}
		return v
	case KindDecimal:
		return normalizeDecimal(v)
	case KindComplex:
		re := normalize(*v.re)
		im := normalize(*v.im)
		if im.IsZero() {
			return re
		}
		return Value{kind: KindComplex, re: &re, im: &im}
	default:
		return v
	}
}

// normalizeDecimal collapses an integral decimal to KindInt. The decimal
// is reduced first so values like 2.50 (coefficient 250, exponent -2)
// are recognized as integers.
func normalizeDecimal(v Value) Value {
	rd := new(apd.Decimal).Set(v.d)
	rd.Reduce(rd)
	if rd.Exponent < 0 {
		return Value{kind: KindDecimal, d: rd}
	}
	i := new(big.Int).Set(rd.Coeff.MathBigInt())
	if rd.Exponent > 0 {
		i.Mul(i, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(rd.Exponent)), nil))
	}
	if rd.Negative {
		i.Neg(i)
	}
	return Value{kind: KindInt, i: i}
}

// Rationalize attempts to recover an exact rational from a float-typed v
// using continued-fraction convergents with denominators bounded by
// maxDen. Exact values pass through unchanged. For complex values both
// parts must rationalize. The second result reports success; on failure
// the original v is returned.
//
// The recovered p/q is accepted only when |v - p/q| ≤ 1e-10·max(1, |v|),
// so a float that genuinely carries an irrational value is rejected
// rather than being forced onto a nearby fraction.
func Rationalize(v Value, maxDen int64) (Value, bool) {
	if maxDen <= 0 {
		return v, false
	}
	switch v.kind {
	case KindInt, KindRat, KindDecimal:
		return v, true
	case KindFloat:
		r, ok := rationalizeFloat(v.f, maxDen)
		if !ok {
			return v, false
		}
		return normalize(Value{kind: KindRat, r: r}), true
	case KindComplex:
		re, okRe := Rationalize(*v.re, maxDen)
		im, okIm := Rationalize(*v.im, maxDen)
		if !okRe || !okIm {
			return v, false
		}
		return Complex(re, im), true
	default:
		return v, false
	}
}

// rationalizeFloat runs the continued-fraction expansion of f, returning
// the last convergent whose denominator stays within maxDen.
func rationalizeFloat(f float64, maxDen int64) (*big.Rat, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}

	var (
		p0, q0 = int64(0), int64(1) // convergent h(-1)
		p1, q1 = int64(1), int64(0) // convergent h(0)
		x      = f
	)
	for iter := 0; iter < 64; iter++ {
		a := math.Floor(x)
		if math.Abs(a) > float64(math.MaxInt64)/2 {
			break
		}
		ai := int64(a)
		p2 := ai*p1 + p0
		q2 := ai*q1 + q0
		if q2 > maxDen || q2 < 0 {
			break
		}
		p0, q0, p1, q1 = p1, q1, p2, q2

		frac := x - a
		if frac < 1e-15 {
			break
		}
		x = 1 / frac
	}
	if q1 == 0 {
		return nil, false
	}
	cand := float64(p1) / float64(q1)
	if math.Abs(f-cand) > 1e-10*math.Max(1, math.Abs(f)) {
		return nil, false
	}
	return big.NewRat(p1, q1), true
}
