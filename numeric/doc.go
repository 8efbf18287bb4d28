// Package numeric implements the exact numeric tower used by the root
// solvers: integer ⊂ rational ⊂ decimal/float ⊂ complex, with a
// normalization step that collapses every computed value to its simplest
// exact representation.
//
// 🚀 What is the numeric tower?
//
//	A Value is a tagged union over five representations:
//	  • Int     — arbitrary-precision integer (math/big)
//	  • Rat     — exact rational, reduced, positive denominator (math/big)
//	  • Float   — IEEE-754 float64
//	  • Decimal — arbitrary-precision decimal (cockroachdb/apd)
//	  • Complex — a pair of real-valued parts, each any of the above
//
// ✨ Key guarantees:
//   - Values are immutable; every operation returns a new Value.
//   - Every constructor and operation normalizes its result: a rational
//     with denominator 1 becomes an integer, an exactly-integral float or
//     decimal becomes an integer, and a complex value with zero imaginary
//     part becomes its real part.
//   - Exact operands produce exact results wherever mathematics allows:
//     Int÷Int yields a Rat, Decimal mixed with Int/Rat is converted to an
//     exact Rat, and only Float contact forces a float result.
//   - Sqrt is type-preserving: √(n²) is exactly n, √(p²/q²) is exactly
//     p/q, negative reals produce i·√(-v), and complex square roots use
//     the component formula, staying exact while intermediates allow.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/polyroot/numeric"
//
//	v := numeric.Rat(9, 4)          // 9/4
//	s, err := numeric.Sqrt(v)       // exactly 3/2
//	w := numeric.Add(s, numeric.Int(1))
//
// Errors:
//   - ErrUnsupported     — operation on the zero Value (no representation).
//   - ErrDivisionByZero  — division by zero (every zero is exact after
//     normalization, so the error is unconditional).
//
// Non-finite floats still propagate through arithmetic: a denormal
// underflow or a complex float fallback can produce ±Inf/NaN, and the
// root finder relies on that propagation to detect and escape such
// regions rather than receiving an error.
package numeric
