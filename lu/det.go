// SPDX-License-Identifier: MIT

package lu

import "github.com/katalvlaran/crout/matrix"

// Det returns det(A) = parity · Π a[i,i] for a matrix a decomposed by
// Decompose, with the parity it returned.
// Pivots clamped to the tolerance contribute the clamped value.
func Det[T matrix.Float](a matrix.Matrix[T], parity int) (T, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return 0, luErrorf(opDet, err)
	}
	if parity != 1 && parity != -1 {
		return 0, luErrorf(opDet, ErrBadParity)
	}

	g := newGrid(a)
	det := T(parity)
	for i := 0; i < g.n; i++ {
		det *= g.at(i, i)
	}
	if g.err != nil {
		return 0, luErrorf(opDet, g.err)
	}

	return det, nil
}
