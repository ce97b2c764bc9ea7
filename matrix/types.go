// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by storage backends and kernels.
// This file contains ONLY the element constraint and the two indexing
// capabilities (2D and 1D). Errors live in errors.go, concrete storage in
// impl_dense.go / impl_vec.go.
package matrix

// Float is the element constraint for numeric kernels.
// Any type whose underlying type is float32 or float64 qualifies; it supports
// arithmetic, comparison, absolute value (via math.Abs on float64) and
// construction from untyped constants.
type Float interface {
	~float32 | ~float64
}

// Matrix represents a two-dimensional mutable collection of T values
// addressed by (row, col). Kernels read and overwrite elements in place.
//
// Implementations own their memory; kernels never retain a Matrix across
// calls. Users can implement this interface to provide custom layouts
// (row-major buffers, blocked storage, foreign libraries).
//
// Complexity notes: all methods are expected O(1).
type Matrix[T Float] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v T) error
}

// Vector represents a fixed-length mutable collection of E values addressed
// by a single index. E is unconstrained so that the same capability serves
// numeric vectors (E = T) and pivot-index vectors (E = uint).
type Vector[E any] interface {
	// Len returns the fixed number of elements.
	Len() int

	// At retrieves element i or returns ErrOutOfRange.
	At(i int) (E, error)

	// Set assigns element i or returns ErrOutOfRange.
	Set(i int, v E) error
}
