// SPDX-License-Identifier: MIT

// Package matrix_test provides benchmarks for core matrix operations,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// benchSizes are the sizes for the polynomial kernels.
var benchSizes = []int{16, 64, 128}

// cofactorSizes stay tiny: the cofactor family is O(n!).
var cofactorSizes = []int{3, 5, 7}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Matrix
	sinkF float64
	sinkB bool
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilled(b, n, n, 1337)
			B := RandFilled(b, n, n, 4242)
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

func BenchmarkSumMatrixInPlace(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilled(b, n, n, 11)
			B := RandFilled(b, n, n, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := A.SumMatrix(B); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilled(b, n, n, 101)
			B := RandFilled(b, n, n, 202)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				C, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = C
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilled(b, n, n+8, 7) // rectangular
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM = A.Transpose()
			}
		})
	}
}

func BenchmarkEqual(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilled(b, n, n, 1313)
			B := A.Clone()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkB = matrix.Equal(A, B)
			}
		})
	}
}

func BenchmarkDeterminant(b *testing.B) {
	b.ReportAllocs()
	for _, n := range cofactorSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilled(b, n, n, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := A.Determinant()
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

func BenchmarkInverseMatrix(b *testing.B) {
	b.ReportAllocs()
	for _, n := range cofactorSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := DiagDominant(b, n, 77)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				inv, err := A.InverseMatrix()
				if err != nil {
					b.Fatal(err)
				}
				sinkM = inv
			}
		})
	}
}
