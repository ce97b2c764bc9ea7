// Package matrix provides the storage side of the crout kernels.
//
// The matrix package provides:
//
//   - Matrix[T] and Vector[E]: narrow indexing capabilities (2D and 1D
//     read/write with fixed size) that kernels consume without knowing the
//     storage layout.
//   - Dense[T]: a row-major implementation with O(1) bounds-checked access and
//     a RawData fast path.
//   - Vec[E]: a slice-backed vector for right-hand sides, solutions and pivot
//     indices (Vec[uint]).
//   - Gonum: an adapter exposing *mat.Dense from gonum as a Matrix[float64].
//   - Mul, MatVec, NormInf: helpers for residual and identity checks.
//
// All public accessors return sentinel errors (ErrOutOfRange, ErrNilMatrix,
// ErrDimensionMismatch, ...) instead of panicking; match them with errors.Is.
package matrix
