package poly

import "github.com/katalvlaran/polyroot/numeric"

// Trim drops exactly-zero leading coefficients. The zero polynomial
// trims to an empty vector.
func Trim(c []numeric.Value) []numeric.Value {
	i := 0
	for i < len(c) && c[i].IsZero() {
		i++
	}
	out := make([]numeric.Value, len(c)-i)
	copy(out, c[i:])
	return out
}

// Degree reports the degree of c after trimming; -1 for the zero or
// empty polynomial.
func Degree(c []numeric.Value) int {
	i := 0
	for i < len(c) && c[i].IsZero() {
		i++
	}
	return len(c) - i - 1
}

// Eval evaluates c at x by Horner's rule. Exact coefficients at an exact
// point produce an exact value. The empty polynomial evaluates to 0.
func Eval(c []numeric.Value, x numeric.Value) numeric.Value {
	if len(c) == 0 {
		return numeric.Int(0)
	}
	acc := c[0]
	for i := 1; i < len(c); i++ {
		acc = numeric.Add(numeric.Mul(acc, x), c[i])
	}
	return acc
}

// Derivative returns the coefficient vector of c′.
func Derivative(c []numeric.Value) []numeric.Value {
	n := len(c) - 1 // degree
	if n <= 0 {
		return nil
	}
	out := make([]numeric.Value, n)
	for i := 0; i < n; i++ {
		out[i] = numeric.Mul(numeric.Int(int64(n-i)), c[i])
	}
	return out
}

// Mul returns the convolution product a·b. Either operand empty yields
// the empty (zero) polynomial.
func Mul(a, b []numeric.Value) []numeric.Value {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make([]numeric.Value, len(a)+len(b)-1)
	for i := range out {
		out[i] = numeric.Int(0)
	}
	for i, ai := range a {
		for j, bj := range b {
			out[i+j] = numeric.Add(out[i+j], numeric.Mul(ai, bj))
		}
	}
	return out
}

// IsExact reports whether every coefficient carries an exact
// representation (no float contamination).
func IsExact(c []numeric.Value) bool {
	for _, v := range c {
		if !v.IsExact() {
			return false
		}
	}
	return true
}
