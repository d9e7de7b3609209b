package qubo_test

import (
	"testing"

	"github.com/katalvlaran/lvqubo/qubo"
)

// BenchmarkSquaredPenalty_n100 measures the O(k²) expansion of a 100-term sum.
func BenchmarkSquaredPenalty_n100(b *testing.B) {
	vars := make([]int, 100)
	for i := range vars {
		vars[i] = i
	}
	expr := qubo.Ones(vars)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = qubo.SquaredPenalty(expr, 50)
	}
}

func BenchmarkEnergy_n100(b *testing.B) {
	vars := make([]int, 100)
	for i := range vars {
		vars[i] = i
	}
	m := qubo.SquaredPenalty(qubo.Ones(vars), 50)
	a := qubo.FromBits(vars[:64], 0xAAAAAAAAAAAAAAAA)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Energy(a)
	}
}
