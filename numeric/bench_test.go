package numeric_test

import (
	"testing"

	"github.com/katalvlaran/polyroot/numeric"
)

// BenchmarkAdd_ExactRational benchmarks the rational contact path
// (1/3 + 2/7 through big.Rat).
func BenchmarkAdd_ExactRational(b *testing.B) {
	x := numeric.Rat(1, 3)
	y := numeric.Rat(2, 7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = numeric.Add(x, y)
	}
}

// BenchmarkMul_Complex benchmarks exact Gaussian-integer multiplication.
func BenchmarkMul_Complex(b *testing.B) {
	x := numeric.Complex(numeric.Int(3), numeric.Int(4))
	y := numeric.Complex(numeric.Int(1), numeric.Int(-2))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = numeric.Mul(x, y)
	}
}

// BenchmarkSqrt_PerfectSquare benchmarks the exact integer square root.
func BenchmarkSqrt_PerfectSquare(b *testing.B) {
	v := numeric.Int(1522756) // 1234²
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := numeric.Sqrt(v); err != nil {
			b.Fatalf("Sqrt failed: %v", err)
		}
	}
}

// BenchmarkRationalize benchmarks continued-fraction recovery of 1/3
// from its float approximation.
func BenchmarkRationalize(b *testing.B) {
	v := numeric.Float(1.0 / 3.0)
	for i := 0; i < b.N; i++ {
		if _, ok := numeric.Rationalize(v, 1_000_000); !ok {
			b.Fatal("Rationalize rejected 1/3")
		}
	}
}
