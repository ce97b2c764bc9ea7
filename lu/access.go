// SPDX-License-Identifier: MIT

package lu

import (
	"fmt"

	"github.com/katalvlaran/crout/matrix"
)

// grid gives the kernels error-free element access to an n×n Matrix.
//
// Fast path: a *matrix.Dense is addressed through its flat row-major buffer.
// Fallback: any other Matrix goes through At/Set; the first storage error is
// latched in err, later reads return 0 and later writes are dropped. Kernels
// check err once per column and abort with it.
type grid[T matrix.Float] struct {
	n   int
	raw []T              // non-nil on the *Dense fast path
	d   *matrix.Dense[T] // non-nil on the *Dense fast path
	m   matrix.Matrix[T]
	err error
}

func newGrid[T matrix.Float](m matrix.Matrix[T]) *grid[T] {
	g := &grid[T]{n: m.Rows(), m: m}
	if d, ok := m.(*matrix.Dense[T]); ok {
		g.d = d
		g.raw = d.RawData()
	}

	return g
}

func (g *grid[T]) at(i, j int) T {
	if g.raw != nil {
		return g.raw[i*g.n+j]
	}
	if g.err != nil {
		return 0
	}
	v, err := g.m.At(i, j)
	if err != nil {
		g.err = fmt.Errorf("At(%d,%d): %w", i, j, err)
		return 0
	}

	return v
}

func (g *grid[T]) set(i, j int, v T) {
	if g.raw != nil {
		g.raw[i*g.n+j] = v
		return
	}
	if g.err != nil {
		return
	}
	if err := g.m.Set(i, j, v); err != nil {
		g.err = fmt.Errorf("Set(%d,%d): %w", i, j, err)
	}
}

// swapRows exchanges rows i and k across all n columns.
func (g *grid[T]) swapRows(i, k int) {
	if g.d != nil {
		if err := g.d.SwapRows(i, k); err != nil && g.err == nil {
			g.err = err
		}
		return
	}
	var tmp T
	for c := 0; c < g.n; c++ {
		tmp = g.at(k, c)
		g.set(k, c, g.at(i, c))
		g.set(i, c, tmp)
	}
}

// readVec copies v into a fresh slice.
func readVec[E any](v matrix.Vector[E]) ([]E, error) {
	if s, ok := v.(*matrix.Vec[E]); ok {
		return append([]E(nil), s.Slice()...), nil
	}
	out := make([]E, v.Len())
	var err error
	for i := range out {
		if out[i], err = v.At(i); err != nil {
			return nil, fmt.Errorf("At(%d): %w", i, err)
		}
	}

	return out, nil
}

// writeVec copies src into v; len(src) must equal v.Len().
func writeVec[E any](v matrix.Vector[E], src []E) error {
	if s, ok := v.(*matrix.Vec[E]); ok {
		copy(s.Slice(), src)
		return nil
	}
	for i, e := range src {
		if err := v.Set(i, e); err != nil {
			return fmt.Errorf("Set(%d): %w", i, err)
		}
	}

	return nil
}
