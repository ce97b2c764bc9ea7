// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for storage and kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/crout/matrix"
	"github.com/stretchr/testify/require"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed matrix.Matrix to forward all methods.
//   - Stage 2: Use hide{X} in tests to force non-*Dense (fallback) paths.
//
// Notes:
//   - Wrap ONLY the operand you want to de-opt; keep the other one *Dense to
//     isolate path differences.
type hide struct{ matrix.Matrix[float64] }

// MustDense ALLOCATES an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.NewDense[float64](r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// NewFilledDense BUILDS r×c *Dense from a row-major flat slice.
// Implementation:
//   - Stage 1: Validate len(vals)==r*c.
//   - Stage 2: Allocate Dense and Set(i,j, vals[i*c+j]).
//
// Notes:
//   - Prefer for small exact-equality tests.
func NewFilledDense(t testing.TB, r, c int, vals []float64) *matrix.Dense[float64] {
	t.Helper()
	require.Len(t, vals, r*c, "NewFilledDense: want %d values", r*c)
	d := MustDense(t, r, c)
	var i, j int // loop iterators
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, d, i, j, vals[i*c+j])
		}
	}

	return d
}

// RandFilledDense RETURNS a new r×c Dense filled with deterministic U(-1,1).
// Deterministic per seed; use identical seeds across fast vs fallback to
// isolate path differences.
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense[float64] {
	t.Helper()
	m := MustDense(t, r, c)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, m, i, j, rng.Float64()*2-1) // 0*2-1=-1 || 1*2-1=1
		}
	}

	return m
}

// MustSet WRITES v to m[i,j] or fails the test.
func MustSet(t testing.TB, m matrix.Matrix[float64], i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d,%v)", i, j, v)
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix[float64], i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// CompareExact ASSERTS strict equality between matrix and 2D literal.
// Use only for integer-like or carefully crafted small matrices.
func CompareExact(t testing.TB, want [][]float64, m matrix.Matrix[float64]) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "CompareExact: Rows")
	var i, j int // loop iterators
	for i = 0; i < m.Rows(); i++ {
		require.Equal(t, len(want[i]), m.Cols(), "CompareExact: Cols[%d]", i)
		for j = 0; j < m.Cols(); j++ {
			require.Equal(t, want[i][j], MustAt(t, m, i, j), "m[%d,%d]", i, j)
		}
	}
}

// CompareClose ASSERTS |a[i,j]-b[i,j]| <= atol element-wise.
func CompareClose(t testing.TB, a, b matrix.Matrix[float64], atol float64) {
	t.Helper()
	require.Equal(t, a.Rows(), b.Rows())
	require.Equal(t, a.Cols(), b.Cols())
	var i, j int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			require.InDelta(t, MustAt(t, a, i, j), MustAt(t, b, i, j), atol, "[%d,%d]", i, j)
		}
	}
}
