// Package solve extracts the roots of univariate polynomials by
// deflation: find one root numerically, divide its factor out with
// synthetic division, repeat until a quadratic remains, then finish in
// closed form.
//
// 🚀 What is in the package?
//
//   - Quadratic — closed-form degree ≤ 2 solver built on the
//     type-preserving square root of package numeric, so rational
//     discriminant squares yield exact rational roots and negative
//     discriminants yield complex pairs automatically.
//   - Divide — exact synthetic (long) division of coefficient vectors
//     via a single collapsed accumulator row.
//   - FindRoot — a multi-strategy iterative search for one root of an
//     arbitrary scalar function: finite-difference Newton, deterministic
//     seeded random search, multiplicity correction (recursion on f/f′),
//     secant, ULP-lattice creep, and a decimal rounding snap.
//   - Roots — the deflation driver combining the three, with exact
//     rational re-snapping of roots of exact-typed polynomials and a
//     deterministic (real, imaginary) output ordering.
//
// ✨ Guarantees:
//   - Purely synchronous and allocation-local: each call owns its
//     transient state, nothing is shared across invocations.
//   - Reproducible: the strategy order is fixed and the random strategy
//     is seeded from the current estimate, so identical inputs produce
//     bit-identical outputs. Budgets (Iterations, Loops, Tolerance) are
//     the only termination mechanism; there is no external cancellation.
//   - No silent degradation: failed exact snapping falls back to the
//     floating approximation explicitly; exhausted budgets surface
//     ErrNoConvergence; inconsistent deflation surfaces ErrDeflation.
//
// ⚙️ Usage:
//
//	import (
//		"github.com/katalvlaran/polyroot/numeric"
//		"github.com/katalvlaran/polyroot/solve"
//	)
//
//	// x³ - 6x² + 11x - 6 = (x-1)(x-2)(x-3)
//	c := []numeric.Value{numeric.Int(1), numeric.Int(-6), numeric.Int(11), numeric.Int(-6)}
//	roots, err := solve.Roots(c, nil)
//	// roots: [1 2 3], err: nil
//
// See example_test.go for runnable examples and the doc comments on each
// operation for the precise contracts.
package solve
