package solve

import "github.com/katalvlaran/polyroot/numeric"

// Quadratic — closed-form solver for a·x² + b·x + c = 0
//
// Description:
//
//	Solves the general degree ≤ 2 form through the type-preserving square
//	root, so exact coefficients yield exact roots whenever the
//	discriminant is a perfect square, and a negative discriminant yields
//	the conjugate complex pair with no special casing.
//
// Branches:
//  1. a = 0, b = 0 — no solvable form: ErrNotQuadratic.
//  2. a = 0, b ≠ 0 — the single linear root -c/b.
//  3. otherwise    — d = b² - 4ac, root = √d,
//     result {(-b+root)/(2a), (-b-root)/(2a)}, each normalized, so a
//     complex intermediate whose imaginary part cancels comes back real.
//
// Returns 1 root for the linear branch, 2 otherwise (a double root is
// reported twice).
func Quadratic(a, b, c numeric.Value) ([]numeric.Value, error) {
	if a.IsZero() {
		if b.IsZero() {
			return nil, ErrNotQuadratic
		}
		x, err := numeric.Div(numeric.Neg(c), b)
		if err != nil {
			return nil, err
		}
		return []numeric.Value{x}, nil
	}

	disc := numeric.Sub(numeric.Mul(b, b), numeric.Mul(numeric.Int(4), numeric.Mul(a, c)))
	root, err := numeric.Sqrt(disc)
	if err != nil {
		return nil, err
	}

	den := numeric.Mul(numeric.Int(2), a)
	hi, err := numeric.Div(numeric.Add(numeric.Neg(b), root), den)
	if err != nil {
		return nil, err
	}
	lo, err := numeric.Div(numeric.Sub(numeric.Neg(b), root), den)
	if err != nil {
		return nil, err
	}
	return []numeric.Value{hi, lo}, nil
}
