// Package polyroot extracts the roots of single-variable polynomials
// while keeping every answer as exact as the inputs allow.
//
// 🚀 What is polyroot?
//
//	A numeric engine that brings together:
//		• Numeric tower: integers, rationals, decimals, floats and complex
//		  values behind one Value type with automatic promotion
//		• Exact square roots: perfect squares stay integers, ratios of
//		  squares stay rationals, negatives turn complex
//		• Quadratic solver: the closed formula over the full tower
//		• Synthetic division: quotient + remainder for any divisor degree
//		• Iterative finder: Newton, seeded random search, multiplicity
//		  correction, secant, ULP creep and digit snapping in one ensemble
//		• Deflation driver: peel one root at a time down to a quadratic tail
//
// ✨ Why choose polyroot?
//
//   - Exactness-preserving — 1/3 is 1/3, never 0.333333
//   - Deterministic — the random strategy is seeded from the estimate,
//     so identical inputs give bit-identical roots
//   - No silent degradation — deflation verifies its remainder and fails
//     loudly instead of returning garbage
//
// Everything is organized under three subpackages:
//
//	numeric/ — the Value tower: constructors, arithmetic, Sqrt, Rationalize
//	poly/    — coefficient-slice helpers: Eval, Derivative, Mul, Trim
//	solve/   — Quadratic, Divide, FindRoot and the Roots deflation driver
//
// Quick taste:
//
//	coeffs := []numeric.Value{
//		numeric.Int(1), numeric.Int(-6), numeric.Int(11), numeric.Int(-6),
//	}
//	roots, _ := solve.Roots(coeffs, nil) // → [1 2 3], exactly
//
//	go get github.com/katalvlaran/polyroot
package polyroot
