package solve

import (
	"github.com/katalvlaran/polyroot/numeric"
	"github.com/katalvlaran/polyroot/poly"
)

// Divide — synthetic (long) division of coefficient vectors
//
// Description:
//
//	Divides dividend (degree n) by divisor (degree m) using the single
//	collapsed accumulator row of synthetic division: the accumulator is
//	seeded with the dividend, and each closed column is scaled by the
//	divisor's leading coefficient and propagated diagonally into the
//	following m columns. Exact operands divide exactly (rational
//	division, never premature float truncation), so
//	dividend == divisor·quotient + remainder holds exactly.
//
// Algorithm Outline:
//  1. Trim the divisor; empty/zero divisor → ErrZeroDivisor.
//  2. Degree-0 divisor c0: quotient = dividend/c0, remainder = [0].
//  3. Otherwise, for col = 0..n over acc (a copy of the dividend):
//     a. col+m ≥ n+1 — the column belongs to the remainder region;
//     stop (no scaling, no diagonal write).
//     b. if c0 ≠ 1, acc[col] /= c0 (normalized write-back).
//     c. for k = 1..m: acc[col+k] += acc[col] · (-divisor[k]).
//  4. quotient = acc[:n-m+1], remainder = acc[n-m+1:] (length m).
//
// A divisor of higher degree than the dividend yields quotient [0] and
// the dividend itself as the remainder, zero-padded on the left to the
// uniform remainder length m.
//
// Complexity: O(n·m) coefficient operations.
func Divide(dividend, divisor []numeric.Value) (quotient, remainder []numeric.Value, err error) {
	div := poly.Trim(divisor)
	if len(div) == 0 {
		return nil, nil, ErrZeroDivisor
	}

	n := len(dividend) - 1
	m := len(div) - 1
	c0 := div[0]

	if m == 0 {
		quotient = make([]numeric.Value, len(dividend))
		for i, v := range dividend {
			if quotient[i], err = numeric.Div(v, c0); err != nil {
				return nil, nil, err
			}
		}
		return quotient, []numeric.Value{numeric.Int(0)}, nil
	}

	if m > n {
		remainder = make([]numeric.Value, m)
		for i := 0; i < m-len(dividend); i++ {
			remainder[i] = numeric.Int(0)
		}
		copy(remainder[m-len(dividend):], dividend)
		return []numeric.Value{numeric.Int(0)}, remainder, nil
	}

	acc := make([]numeric.Value, len(dividend))
	copy(acc, dividend)

	monic := numeric.Sub(c0, numeric.Int(1)).IsZero()
	for col := 0; col <= n; col++ {
		// acc[col] is closed: no earlier column writes here again.
		if col+m >= n+1 {
			break
		}
		if !monic {
			if acc[col], err = numeric.Div(acc[col], c0); err != nil {
				return nil, nil, err
			}
		}
		for k := 1; k <= m; k++ {
			acc[col+k] = numeric.Add(acc[col+k], numeric.Mul(acc[col], numeric.Neg(div[k])))
		}
	}

	return acc[:n-m+1], acc[n-m+1:], nil
}
