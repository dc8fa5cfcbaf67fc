// Package matrix_test provides benchmarks for core matrix operations,
// using deterministic pseudo-random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/matrix"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Matrix[float64]
	sinkF float64
)

// randMatrix builds an n×n matrix with a fixed-seed fill.
func randMatrix(b *testing.B, n int, seed int64) *matrix.Matrix[float64] {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.FromFunc(n, n, func(i, j int) float64 { return rng.Float64() })
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randMatrix(b, n, 1337)
			B := randMatrix(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randMatrix(b, n, 11)
			B := randMatrix(b, n, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randMatrix(b, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM = A.Transpose()
			}
		})
	}
}

func BenchmarkSum(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randMatrix(b, n, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s, err := matrix.Sum(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = s
			}
		})
	}
}
