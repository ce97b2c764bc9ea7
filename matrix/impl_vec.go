// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Vec is a slice-backed Vector. The zero value is an empty vector.
// The same type serves numeric vectors (Vec[float64]) and pivot vectors
// (Vec[uint]).
type Vec[E any] struct {
	data []E
}

var (
	_ Vector[float64] = (*Vec[float64])(nil)
	_ Vector[uint]    = (*Vec[uint])(nil)
)

// NewVec allocates a zero-filled vector of length n (n >= 0).
// Negative n yields ErrInvalidDimensions.
func NewVec[E any](n int) (*Vec[E], error) {
	if n < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Vec[E]{data: make([]E, n)}, nil
}

// NewVecFrom copies values into a new vector.
func NewVecFrom[E any](values []E) *Vec[E] {
	cp := make([]E, len(values))
	copy(cp, values)

	return &Vec[E]{data: cp}
}

// Len returns the number of elements. Complexity: O(1).
func (v *Vec[E]) Len() int { return len(v.data) }

// At returns element i or ErrOutOfRange.
func (v *Vec[E]) At(i int) (E, error) {
	if i < 0 || i >= len(v.data) {
		var zero E
		return zero, fmt.Errorf("Vec.At(%d): %w", i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set assigns element i or returns ErrOutOfRange.
func (v *Vec[E]) Set(i int, e E) error {
	if i < 0 || i >= len(v.data) {
		return fmt.Errorf("Vec.Set(%d): %w", i, ErrOutOfRange)
	}
	v.data[i] = e

	return nil
}

// Slice returns the backing slice; writes are visible through the vector.
func (v *Vec[E]) Slice() []E { return v.data }
