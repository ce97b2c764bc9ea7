// Package partition splits index spaces into contiguous ranges for parallel
// workers.
//
// Two strategies are provided:
//
//   - Pairs balances triangular workloads, where entity i is paired with
//     every entity k > i. Each worker receives roughly the same number of
//     pairs, not of entities. Small collections (below WithMinConcurrent,
//     default 1000) are not split.
//   - Even balances independent items: range lengths differ by at most one.
//
// Usage:
//
//	ranges, _ := partition.Pairs(len(particles), partition.WithThreads(8))
//	for _, r := range ranges {
//		go work(r.Start, r.End)
//	}
//
// The package allocates only the returned slice and holds no state.
package partition
