// Package lu factors, solves and inverts square linear systems with Crout's
// LU decomposition and implicit partial pivoting.
//
// 🚀 What is it?
//
//	Decompose rewrites A in place as L\U of a row-permuted A, where L is
//	unit lower-triangular (diagonal implied) and U is upper-triangular.
//	Rows are chosen by the largest scaled candidate |a[i,j]| / max_k|a[i,k]|,
//	so badly scaled rows do not dominate the pivot choice.
//
// ✨ Key features:
//   - works over any matrix.Matrix[T] / matrix.Vector[E] storage, with a
//     flat-buffer fast path for *matrix.Dense
//   - float32 and float64 (matrix.Float); tolerance defaults to the machine
//     epsilon of T
//   - signed parity for determinants (Det)
//   - Solve accepts b and x as the same Vector (SolveInPlace)
//   - optional progress telemetry (WithReporter, WithLogger)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/crout/lu"
//
//	a, _ := matrix.NewDenseFrom([][]float64{{4, 3}, {6, 3}})
//	pivot, _ := matrix.NewVec[uint](2)
//	parity, err := lu.Decompose[float64](a, pivot)
//	if errors.Is(err, lu.ErrSingular) { ... }
//
//	b := matrix.NewVecFrom([]float64{1, 2})
//	_ = lu.SolveInPlace[float64](a, pivot, b) // b = [0.5, -1/3]
//
// Errors:
//
//   - ErrSingular: a row is zero to working precision; the only numerical
//     failure. Tiny pivots found during elimination are clamped to the
//     tolerance instead.
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch,
//     matrix.ErrInvalidDimensions, matrix.ErrOutOfRange: misuse.
//
// Kernels are synchronous and not safe for concurrent use on the same
// storage; independent systems can be processed in parallel (see package
// batch).
//
// Performance:
//
//   - Decompose, Invert: O(n³) time
//   - Solve: O(n²) time, O(n) scratch
package lu
