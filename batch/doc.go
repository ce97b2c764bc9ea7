// Package batch solves or inverts many independent systems concurrently.
//
// The lu kernels are single-threaded and must not share storage across
// goroutines; batch gives each worker a disjoint, contiguous slice of the
// jobs (partition.Even) and runs the workers in an errgroup. The first error
// cancels the rest.
//
//	jobs := []batch.Job[float64]{{A: a1, B: b1, X: x1}, {A: a2, B: b2, X: x2}}
//	if err := batch.SolveAll(ctx, jobs, batch.WithWorkers(4)); err != nil {
//		// "job 1: Decompose: row 0: matrix: singular matrix"
//	}
package batch
