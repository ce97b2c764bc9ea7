// SPDX-License-Identifier: MIT

package lu

import (
	"fmt"

	"github.com/katalvlaran/crout/matrix"
)

// Solve computes x such that A·x = b, where a and pivot hold the output of a
// successful Decompose on A.
//
// Implementation:
//   - Stage 1: Validate a (square), pivot, b and x (len n); every pivot entry
//     must be < n.
//   - Stage 2: Copy b into a scratch slice; b and x may be the same Vector.
//   - Stage 3: Replay the row interchanges, forward-substitute with the unit
//     lower factor (skipping the leading zeros of the permuted b), then
//     back-substitute with the upper factor.
//   - Stage 4: Write the scratch slice into x.
//
// The diagonal of a is never tested for zero: Decompose already clamped it.
// Calling Solve on a matrix that was not decomposed yields meaningless x.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrInvalidDimensions (validation).
//   - ErrOutOfRange (pivot entry >= n), storage errors from a, b or x.
//
// Complexity:
//   - Time O(n²), Space O(n).
func Solve[T matrix.Float](a matrix.Matrix[T], pivot matrix.Vector[uint], b, x matrix.Vector[T]) error {
	n, perm, err := checkFactors(a, pivot)
	if err != nil {
		return luErrorf(opSolve, err)
	}
	if err = matrix.ValidateVecLen(b, n); err != nil {
		return luErrorf(opSolve, fmt.Errorf("b: %w", err))
	}
	if err = matrix.ValidateVecLen(x, n); err != nil {
		return luErrorf(opSolve, fmt.Errorf("x: %w", err))
	}

	y, err := readVec(b)
	if err != nil {
		return luErrorf(opSolve, fmt.Errorf("b: %w", err))
	}
	g := newGrid(a)
	substitute(g, perm, y)
	if g.err != nil {
		return luErrorf(opSolve, g.err)
	}
	if err = writeVec(x, y); err != nil {
		return luErrorf(opSolve, fmt.Errorf("x: %w", err))
	}

	return nil
}

// SolveInPlace is Solve with x = b: b is overwritten by the solution.
func SolveInPlace[T matrix.Float](a matrix.Matrix[T], pivot matrix.Vector[uint], b matrix.Vector[T]) error {
	return Solve(a, pivot, b, b)
}

// checkFactors validates a decomposed matrix and its swap record and returns
// the order n with the swap record as ints.
func checkFactors[T matrix.Float](a matrix.Matrix[T], pivot matrix.Vector[uint]) (int, []int, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return 0, nil, err
	}
	n := a.Rows()
	if err := matrix.ValidateVecLen(pivot, n); err != nil {
		return 0, nil, fmt.Errorf("pivot: %w", err)
	}
	raw, err := readVec(pivot)
	if err != nil {
		return 0, nil, fmt.Errorf("pivot: %w", err)
	}
	perm := make([]int, n)
	for i, p := range raw {
		if p >= uint(n) {
			return 0, nil, fmt.Errorf("pivot[%d]=%d: %w", i, p, matrix.ErrOutOfRange)
		}
		perm[i] = int(p)
	}

	return n, perm, nil
}

// substitute overwrites y (the right-hand side) with the solution of
// L·U·x = P·y. Storage errors are latched in g.err.
func substitute[T matrix.Float](g *grid[T], perm []int, y []T) {
	n := g.n
	var i, j int
	var sum T

	for i = 0; i < n; i++ {
		if p := perm[i]; p != i {
			y[i], y[p] = y[p], y[i]
		}
	}

	// Forward: L has a unit diagonal. first marks the first non-zero entry of
	// the permuted y; everything before it contributes nothing.
	first := -1
	for i = 0; i < n; i++ {
		sum = y[i]
		if first >= 0 {
			for j = first; j < i; j++ {
				sum -= g.at(i, j) * y[j]
			}
		} else if sum != 0 {
			first = i
		}
		y[i] = sum
	}

	// Backward.
	for i = n - 1; i >= 0; i-- {
		sum = y[i]
		for j = i + 1; j < n; j++ {
			sum -= g.at(i, j) * y[j]
		}
		y[i] = sum / g.at(i, i)
	}
}
