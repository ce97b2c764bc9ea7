// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Gonum adapts a *mat.Dense to the Matrix[float64] capability.
// gonum panics on out-of-range access; the adapter checks bounds first and
// returns ErrOutOfRange instead, so kernels see the same contract as Dense.
// The wrapped matrix is shared, not copied: kernels mutate it in place.
type Gonum struct {
	D *mat.Dense
}

var _ Matrix[float64] = Gonum{}

// FromGonum wraps d. A nil d yields ErrNilMatrix.
func FromGonum(d *mat.Dense) (Gonum, error) {
	if d == nil {
		return Gonum{}, validatorErrorf("FromGonum", ErrNilMatrix)
	}

	return Gonum{D: d}, nil
}

// Rows returns the row count of the wrapped matrix.
func (g Gonum) Rows() int {
	r, _ := g.D.Dims()
	return r
}

// Cols returns the column count of the wrapped matrix.
func (g Gonum) Cols() int {
	_, c := g.D.Dims()
	return c
}

// At reads (i, j) or returns ErrOutOfRange.
func (g Gonum) At(i, j int) (float64, error) {
	r, c := g.D.Dims()
	if i < 0 || i >= r || j < 0 || j >= c {
		return 0, fmt.Errorf("Gonum.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return g.D.At(i, j), nil
}

// Set writes (i, j) or returns ErrOutOfRange.
func (g Gonum) Set(i, j int, v float64) error {
	r, c := g.D.Dims()
	if i < 0 || i >= r || j < 0 || j >= c {
		return fmt.Errorf("Gonum.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	g.D.Set(i, j, v)

	return nil
}

// ToGonum copies any Matrix[float64] into a new *mat.Dense.
// Complexity: O(r*c).
func ToGonum(m Matrix[float64]) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	r, c := m.Rows(), m.Cols()
	if r <= 0 || c <= 0 {
		return nil, ErrInvalidDimensions
	}
	if d, ok := m.(*Dense[float64]); ok {
		return mat.NewDense(r, c, append([]float64(nil), d.data...)), nil
	}
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			out.Set(i, j, v)
		}
	}

	return out, nil
}
