// Package poly supplies the coefficient-vector view of a univariate
// polynomial consumed by the solvers: degree, Horner evaluation,
// derivative, convolution product and exactness inspection.
//
// Representation:
//
//	A polynomial is an ordered []numeric.Value with index 0 holding the
//	highest-degree coefficient and the last index the constant term, so
//	degree = len - 1 after trimming leading zeros. Functions never mutate
//	an input slice; they return fresh vectors.
//
// ⚙️ Usage:
//
//	// x³ - 12x² - 42
//	p := []numeric.Value{numeric.Int(1), numeric.Int(-12), numeric.Int(0), numeric.Int(-42)}
//	y := poly.Eval(p, numeric.Int(3))
//
// The solvers in package solve treat this package as their only
// polynomial dependency; anything richer (formatting, FFT products,
// interpolation) is out of scope here.
package poly
