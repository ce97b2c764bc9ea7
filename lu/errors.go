// SPDX-License-Identifier: MIT
// Package lu: sentinel errors and operation tags.
// Kernel failures are reported as "<Op>: <cause>" wrapping one of the matrix
// sentinels, so callers match with errors.Is(err, lu.ErrSingular) or
// errors.Is(err, matrix.ErrDimensionMismatch).

package lu

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/crout/matrix"
)

var (
	// ErrSingular is returned by Decompose (and Inverse) when a row's largest
	// magnitude is at or below the tolerance. It is the same sentinel as
	// matrix.ErrSingular.
	ErrSingular = matrix.ErrSingular

	// ErrBadParity is returned by Det when parity is neither +1 nor -1.
	ErrBadParity = errors.New("lu: parity must be +1 or -1")
)

// Operation name constants for unified error wrapping.
const (
	opDecompose = "Decompose"
	opSolve     = "Solve"
	opInvert    = "Invert"
	opInverse   = "Inverse"
	opDet       = "Det"
)

// luErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Call only with a non-nil err.
func luErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
