// SPDX-License-Identifier: MIT
// Package lu_test contains shared fixtures for the kernel tests.
//
// Purpose:
//   • Deterministic, well-conditioned fixtures (seeded RNG, diagonal boost).
//   • Wrappers that hide concrete storage types to force fallback paths.

package lu_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/crout/matrix"
	"github.com/stretchr/testify/require"
)

// hide masks the concrete Matrix type so kernels take the At/Set path.
type hide[T matrix.Float] struct{ matrix.Matrix[T] }

// hideVec masks the concrete Vector type so kernels take the At/Set path.
type hideVec[E any] struct{ matrix.Vector[E] }

// errStorage is returned by failingSet.
var errStorage = errors.New("storage: write rejected")

// failingSet is a Matrix whose writes always fail; reads succeed.
type failingSet struct{ *matrix.Dense[float64] }

func (f failingSet) Set(int, int, float64) error { return errStorage }

// MustDense builds a *Dense from a row literal or fails the test.
func MustDense(t testing.TB, rows [][]float64) *matrix.Dense[float64] {
	t.Helper()
	d, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return d
}

// MustPivot allocates a zeroed pivot vector of length n.
func MustPivot(t testing.TB, n int) *matrix.Vec[uint] {
	t.Helper()
	p, err := matrix.NewVec[uint](n)
	require.NoError(t, err)

	return p
}

// RandWellConditioned returns an n×n matrix with U(-1,1) entries plus n on
// the diagonal, so it is strictly diagonally dominant and safely invertible.
func RandWellConditioned(t testing.TB, n int, seed int64) *matrix.Dense[float64] {
	t.Helper()
	d, err := matrix.NewDense[float64](n, n)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	raw := d.RawData()
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			raw[i*n+j] = rng.Float64()*2 - 1
		}
		raw[i*n+i] += float64(n)
	}

	return d
}

// RandVec returns n deterministic U(-1,1) values.
func RandVec(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64()*2 - 1
	}

	return v
}

// MustAt reads m[i,j] or fails the test.
func MustAt[T matrix.Float](t testing.TB, m matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RequireIdentity asserts that m is within atol of I element-wise.
func RequireIdentity(t testing.TB, m matrix.Matrix[float64], atol float64) {
	t.Helper()
	n := m.Rows()
	require.Equal(t, n, m.Cols())
	var i, j int
	var want float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			want = 0
			if i == j {
				want = 1
			}
			require.InDeltaf(t, want, MustAt(t, m, i, j), atol, "m[%d,%d]", i, j)
		}
	}
}

// splitLU unpacks decomposed storage into L (unit diagonal) and U.
func splitLU(t testing.TB, a matrix.Matrix[float64]) (l, u *matrix.Dense[float64]) {
	t.Helper()
	n := a.Rows()
	l, err := matrix.NewIdentity[float64](n)
	require.NoError(t, err)
	u, err = matrix.NewDense[float64](n, n)
	require.NoError(t, err)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if j < i {
				require.NoError(t, l.Set(i, j, MustAt(t, a, i, j)))
			} else {
				require.NoError(t, u.Set(i, j, MustAt(t, a, i, j)))
			}
		}
	}

	return l, u
}
