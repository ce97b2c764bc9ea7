// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/crout/lu"
	"github.com/katalvlaran/crout/matrix"
	"github.com/katalvlaran/crout/partition"
)

// Job is one linear system A·X = B.
//
// A is overwritten by its L\U factors. X may alias B. Parity is set by
// SolveAll on success. Jobs in one call must not share storage.
type Job[T matrix.Float] struct {
	A      matrix.Matrix[T]
	B      matrix.Vector[T]
	X      matrix.Vector[T]
	Parity int
}

const panicWorkersInvalid = "batch: WithWorkers: n must be > 0"

// Option configures SolveAll and InvertAll.
type Option func(*Options)

// Options holds the resolved batch configuration.
type Options struct {
	workers int // 0 selects runtime.NumCPU()
	kernel  []lu.Option
	logger  *slog.Logger
}

// WithWorkers caps the number of goroutines. Panics if n <= 0.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithKernelOptions forwards opts to every lu.Decompose call.
func WithKernelOptions(opts ...lu.Option) Option {
	return func(o *Options) { o.kernel = append(o.kernel, opts...) }
}

// WithLogger receives one Debug record per finished range of jobs.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func gatherOptions(user ...Option) Options {
	var o Options
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	if o.workers == 0 {
		o.workers = runtime.NumCPU()
	}

	return o
}

// SolveAll decomposes each jobs[i].A and solves it for jobs[i].X.
//
// Jobs are split into contiguous ranges (partition.Even), one goroutine per
// range. ctx is checked before every job; the first failure cancels the
// remaining ranges and is returned as "job <i>: <cause>". Jobs that already
// finished keep their results.
func SolveAll[T matrix.Float](ctx context.Context, jobs []Job[T], opts ...Option) error {
	o := gatherOptions(opts...)

	return run(ctx, len(jobs), o, func(i int) error {
		job := &jobs[i]
		if err := matrix.ValidateSquareNonNil(job.A); err != nil {
			return err
		}
		pivot, err := matrix.NewVec[uint](job.A.Rows())
		if err != nil {
			return err
		}
		parity, err := lu.Decompose(job.A, pivot, o.kernel...)
		if err != nil {
			return err
		}
		if err = lu.Solve(job.A, pivot, job.B, job.X); err != nil {
			return err
		}
		job.Parity = parity

		return nil
	})
}

// InvertAll replaces every matrix in mats by its inverse, concurrently.
// Errors are reported as in SolveAll.
func InvertAll[T matrix.Float](ctx context.Context, mats []matrix.Matrix[T], opts ...Option) error {
	o := gatherOptions(opts...)

	return run(ctx, len(mats), o, func(i int) error {
		return lu.Inverse(mats[i], o.kernel...)
	})
}

// run calls fn for every index in [0, n) across o.workers goroutines.
func run(ctx context.Context, n int, o Options, fn func(i int) error) error {
	ranges, err := partition.Even(n, o.workers)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, r := range ranges {
		r := r
		g.Go(func() error {
			for i := r.Start; i < r.End; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := fn(i); err != nil {
					return fmt.Errorf("job %d: %w", i, err)
				}
			}
			if o.logger != nil {
				o.logger.LogAttrs(gctx, slog.LevelDebug, "batch: range done",
					slog.Int("start", r.Start),
					slog.Int("end", r.End))
			}

			return nil
		})
	}

	return g.Wait()
}
