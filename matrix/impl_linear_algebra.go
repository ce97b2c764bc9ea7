// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication, matrix-vector products and infinity norms. These are
// the building blocks callers use to verify factorizations (residuals,
// A·A⁻¹ ≈ I) without depending on a concrete storage type.
//
// Notes:
//   - Each kernel has a fast path on *Dense (flat row-major indexing) and a
//     fallback through the Matrix interface with fixed loop orders.
//   - All kernels validate through validators.go and wrap via matrixErrorf.

package matrix

import "fmt"

// ZeroSum is the initial value for dot-product accumulators.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul     = "Mul"
	opMatVec  = "MatVec"
	opNormInf = "NormInf"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Float](a, b Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense[T](aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current T
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec[T Float](m Matrix[T], x []T) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if len(x) != m.Cols() {
		return nil, matrixErrorf(opMatVec, ErrDimensionMismatch)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]T, rows)

	if d, ok := m.(*Dense[T]); ok {
		var i, j, base int
		var acc T
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var i, j int
	var mv T
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// NormInf returns the maximum absolute row sum ‖m‖∞.
// Complexity: O(r*c).
func NormInf[T Float](m Matrix[T]) (T, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNormInf, err)
	}
	var (
		best, row, v T
		err          error
	)
	for i := 0; i < m.Rows(); i++ {
		row = ZeroSum
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return 0, matrixErrorf(opNormInf, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			row += Abs(v)
		}
		if row > best {
			best = row
		}
	}

	return best, nil
}

// VecNormInf returns max_i |x[i]| (0 for an empty slice).
func VecNormInf[T Float](x []T) T {
	var best T
	for _, v := range x {
		if a := Abs(v); a > best {
			best = a
		}
	}

	return best
}
