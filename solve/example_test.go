package solve_test

import (
	"fmt"

	"github.com/katalvlaran/polyroot/numeric"
	"github.com/katalvlaran/polyroot/solve"
)

// ExampleRoots extracts every root of x³ - 6x² + 11x - 6 = (x-1)(x-2)(x-3).
// Integer coefficients keep the whole pipeline exact, so the roots print
// as plain integers.
func ExampleRoots() {
	coeffs := []numeric.Value{
		numeric.Int(1), numeric.Int(-6), numeric.Int(11), numeric.Int(-6),
	}
	roots, err := solve.Roots(coeffs, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range roots {
		fmt.Println(r)
	}
	// Output:
	// 1
	// 2
	// 3
}

// ExampleQuadratic solves 6x² - 5x + 1 = 0. The discriminant is a
// perfect square, so both roots come out as exact rationals.
func ExampleQuadratic() {
	roots, err := solve.Quadratic(numeric.Int(6), numeric.Int(-5), numeric.Int(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(roots[0], roots[1])
	// Output:
	// 1/2 1/3
}

// ExampleDivide runs the textbook synthetic division
// (x³ - 12x² - 42) ÷ (x - 3).
func ExampleDivide() {
	dividend := []numeric.Value{
		numeric.Int(1), numeric.Int(-12), numeric.Int(0), numeric.Int(-42),
	}
	divisor := []numeric.Value{numeric.Int(1), numeric.Int(-3)}

	quotient, remainder, err := solve.Divide(dividend, divisor)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("quotient: ", quotient)
	fmt.Println("remainder:", remainder)
	// Output:
	// quotient:  [1 -9 -27]
	// remainder: [-123]
}

// ExampleFindRoot refines a root of x² - 1 from the initial guess 2.
// The search lands exactly on 1, and the exact hit collapses back to an
// integer.
func ExampleFindRoot() {
	f := func(v numeric.Value) numeric.Value {
		return numeric.Sub(numeric.Mul(v, v), numeric.Int(1))
	}
	root, err := solve.FindRoot(numeric.Int(2), f, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(root)
	// Output:
	// 1
}
