// SPDX-License-Identifier: MIT

package lu

import (
	"fmt"

	"github.com/katalvlaran/crout/matrix"
)

// Decompose factors the square matrix a in place with Crout's method and
// implicit (row-scaled) partial pivoting, so that a holds L\U of a
// row-permuted copy of the input.
//
// Implementation:
//   - Stage 1: Validate a (not nil, square) and pivot (len n).
//   - Stage 2: Scale factors vv[i] = 1/max_j|a[i,j]|; a row max <= tol fails
//     with ErrSingular before anything is written.
//   - Stage 3: For each column j: finish U above the diagonal, compute the
//     candidate pivots on and below it, pick the row with the largest
//     vv[i]*|a[i,j]| (>=, so ties go to the later row), swap it into place,
//     clamp a tiny pivot to tol, and divide the sub-diagonal by the pivot.
//   - Stage 4: Publish the swap record into pivot and return the parity.
//
// Behavior highlights:
//   - L has an implicit unit diagonal; its multipliers live below a's diagonal.
//   - pivot[j] is the row that was swapped into row j while processing column j.
//   - A pivot with |a[j,j]| <= tol is replaced by +tol instead of failing.
//   - pivot is left untouched when an error is returned.
//
// Inputs:
//   - a: square Matrix (n×n), overwritten in place.
//   - pivot: Vector of length n receiving the swap record.
//   - opts: WithTolerance, WithReporter, WithLogger.
//
// Returns:
//   - int: +1 for an even number of row interchanges, -1 for odd.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrInvalidDimensions (validation).
//   - ErrSingular (a row is zero to working precision).
//   - Storage errors from a or pivot, wrapped with coordinates.
//
// Complexity:
//   - Time O(n³), Space O(n) for scale factors and the swap record.
func Decompose[T matrix.Float](a matrix.Matrix[T], pivot matrix.Vector[uint], opts ...Option) (int, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return 0, luErrorf(opDecompose, err)
	}
	n := a.Rows()
	if err := matrix.ValidateVecLen(pivot, n); err != nil {
		return 0, luErrorf(opDecompose, err)
	}
	o := gatherOptions(opts...)
	tol := tolerance[T](o)
	g := newGrid(a)

	// Stage 2: implicit scaling information per row.
	vv := make([]T, n)
	var i, j, k int
	var big, v T
	for i = 0; i < n; i++ {
		big = 0
		for j = 0; j < n; j++ {
			if v = matrix.Abs(g.at(i, j)); v > big {
				big = v
			}
		}
		if g.err != nil {
			return 0, luErrorf(opDecompose, g.err)
		}
		if big <= tol {
			return 0, luErrorf(opDecompose, fmt.Errorf("row %d: %w", i, ErrSingular))
		}
		vv[i] = 1 / big
	}

	// Stage 3: column sweep.
	var (
		sum, merit, pv T
		imax           int
		parity         = 1
		swaps          = make([]uint, n)
		report         = newProgress(o.reporter, n)
	)
	for j = 0; j < n; j++ {
		report.column(j)

		// U above the diagonal.
		for i = 0; i < j; i++ {
			sum = g.at(i, j)
			for k = 0; k < i; k++ {
				sum -= g.at(i, k) * g.at(k, j)
			}
			g.set(i, j, sum)
		}

		// Diagonal and sub-diagonal candidates; search for the pivot.
		big = 0
		imax = j
		for i = j; i < n; i++ {
			sum = g.at(i, j)
			for k = 0; k < j; k++ {
				sum -= g.at(i, k) * g.at(k, j)
			}
			g.set(i, j, sum)
			if merit = vv[i] * matrix.Abs(sum); merit >= big {
				big = merit
				imax = i
			}
		}

		if imax != j {
			g.swapRows(imax, j)
			vv[imax], vv[j] = vv[j], vv[imax]
			parity = -parity
		}
		swaps[j] = uint(imax)

		pv = g.at(j, j)
		if matrix.Abs(pv) <= tol {
			pv = tol
			g.set(j, j, pv)
		}

		if j != n-1 {
			pv = 1 / pv
			for i = j + 1; i < n; i++ {
				g.set(i, j, g.at(i, j)*pv)
			}
		}

		if g.err != nil {
			return 0, luErrorf(opDecompose, g.err)
		}
	}
	report.done()

	// Stage 4: publish the swap record.
	if err := writeVec(pivot, swaps); err != nil {
		return 0, luErrorf(opDecompose, err)
	}

	return parity, nil
}
