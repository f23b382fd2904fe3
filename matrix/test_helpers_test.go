// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernel tests.
//   • Keep all data finite so tolerant comparisons stay meaningful.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// MustNew allocates an r×c zero matrix or fails the test.
func MustNew(t testing.TB, r, c int) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(r, c)
	require.NoError(t, err, "New(%d,%d)", r, c)

	return m
}

// MustFromRows builds a matrix from a literal or fails the test.
func MustFromRows(t testing.TB, rows [][]float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err, "NewFromRows(%v)", rows)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m *matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// MustSet writes (i,j) or fails the test.
func MustSet(t testing.TB, m *matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d)", i, j)
}

// RequireMatrix asserts that got equals the literal want within DefaultEpsilon,
// printing both on failure.
func RequireMatrix(t testing.TB, want [][]float64, got *matrix.Matrix) {
	t.Helper()
	w := MustFromRows(t, want)
	require.Truef(t, matrix.Equal(w, got), "want:\n%v\ngot:\n%v", w, got)
}

// RandFilled returns an r×c matrix with deterministic U(-1,1) values by seed.
func RandFilled(t testing.TB, r, c int, seed int64) *matrix.Matrix {
	t.Helper()
	m := MustNew(t, r, c)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, m, i, j, rng.Float64()*2-1)
		}
	}

	return m
}

// DiagDominant returns an n×n matrix whose diagonal strictly dominates each
// row, hence invertible and well-conditioned.
func DiagDominant(t testing.TB, n int, seed int64) *matrix.Matrix {
	t.Helper()
	m := RandFilled(t, n, n, seed)
	for i := 0; i < n; i++ {
		v := MustAt(t, m, i, i)
		MustSet(t, m, i, i, v+float64(n)+1)
	}

	return m
}

// isErr is errors.Is, shortened for boolean property bodies.
func isErr(err, target error) bool { return errors.Is(err, target) }

// nearlyEqual compares with a tolerance relative to max(1, |a|, |b|).
func nearlyEqual(a, b, tol float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))

	return math.Abs(a-b) <= tol*scale
}
