// Package crout is a small toolkit for dense square linear systems built
// around Crout's LU decomposition with implicit partial pivoting.
//
// 🚀 What is crout?
//
//	A generic, storage-agnostic LU kernel plus the pieces around it:
//		• lu/        : Decompose, Solve, Invert, Inverse, Det
//		• matrix/    : Matrix/Vector capabilities, Dense and Vec storage,
//		               a gonum adapter and helper kernels (Mul, MatVec, NormInf)
//		• partition/ : contiguous index ranges for parallel workers
//		• batch/     : many independent systems solved concurrently
//		• cmd/crout  : a CLI reading systems from YAML
//
// ✨ Why crout?
//
//   - Works over any storage: implement Matrix[T] and the kernels run on it
//   - float32 and float64, tolerance tied to the machine epsilon of T
//   - Sentinel errors, never panics on bad input
//   - Optional progress telemetry through log/slog
//
// Quick example:
//
//	a, _ := matrix.NewDenseFrom([][]float64{{4, 3}, {6, 3}})
//	pivot, _ := matrix.NewVec[uint](2)
//	parity, _ := lu.Decompose[float64](a, pivot)
//	b := matrix.NewVecFrom([]float64{1, 2})
//	_ = lu.SolveInPlace[float64](a, pivot, b)  // b = [0.5, -1/3]
//	det, _ := lu.Det[float64](a, parity)       // -6
//
//	go get github.com/katalvlaran/crout
package crout
