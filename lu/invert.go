// SPDX-License-Identifier: MIT

package lu

import (
	"fmt"

	"github.com/katalvlaran/crout/matrix"
)

// Invert replaces the factors held in a with the inverse of the original
// matrix. Column k of the inverse is the solution against the unit vector e_k;
// the columns are collected in a scratch n×n buffer and copied into a only
// after all of them are computed, so a never holds a mix of factors and
// inverse.
//
// Errors: as Solve. On error a still holds the factors unless the failure
// came from a.Set while copying the result back.
//
// Complexity: Time O(n³), Space O(n²).
func Invert[T matrix.Float](a matrix.Matrix[T], pivot matrix.Vector[uint]) error {
	n, perm, err := checkFactors(a, pivot)
	if err != nil {
		return luErrorf(opInvert, err)
	}

	g := newGrid(a)
	inv := make([]T, n*n) // row-major
	col := make([]T, n)
	var i, k int
	for k = 0; k < n; k++ {
		for i = range col {
			col[i] = 0
		}
		col[k] = 1
		substitute(g, perm, col)
		if g.err != nil {
			return luErrorf(opInvert, fmt.Errorf("column %d: %w", k, g.err))
		}
		for i = 0; i < n; i++ {
			inv[i*n+k] = col[i]
		}
	}

	for i = 0; i < n; i++ {
		for k = 0; k < n; k++ {
			g.set(i, k, inv[i*n+k])
		}
	}
	if g.err != nil {
		return luErrorf(opInvert, g.err)
	}

	return nil
}

// Inverse inverts a in place: Decompose with an internal pivot vector, then
// Invert. On ErrSingular a is left as Decompose left it (untouched, since
// singular rows are detected before elimination starts).
//
// Example:
//
//	a, _ := matrix.NewDenseFrom([][]float64{{4, 7}, {2, 6}})
//	if err := lu.Inverse[float64](a); err != nil { ... }
//	// a = [[0.6, -0.7], [-0.2, 0.4]]
func Inverse[T matrix.Float](a matrix.Matrix[T], opts ...Option) error {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return luErrorf(opInverse, err)
	}
	pivot, err := matrix.NewVec[uint](a.Rows())
	if err != nil {
		return luErrorf(opInverse, err)
	}
	if _, err = Decompose(a, pivot, opts...); err != nil {
		return luErrorf(opInverse, err)
	}
	if err = Invert(a, pivot); err != nil {
		return luErrorf(opInverse, err)
	}

	return nil
}
