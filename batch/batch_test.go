// SPDX-License-Identifier: MIT

package batch_test

import (
	"bytes"
	"context"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/katalvlaran/crout/batch"
	"github.com/katalvlaran/crout/lu"
	"github.com/katalvlaran/crout/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// system returns a diagonally dominant n×n matrix and a rhs, both seeded.
func system(t *testing.T, n int, seed int64) (*matrix.Dense[float64], []float64) {
	t.Helper()
	a, err := matrix.NewDense[float64](n, n)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	raw := a.RawData()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			raw[i*n+j] = rng.Float64()*2 - 1
		}
		raw[i*n+i] += float64(n)
	}
	b := make([]float64, n)
	for i := range b {
		b[i] = rng.Float64()*2 - 1
	}

	return a, b
}

// solveOne is the sequential reference.
func solveOne(t *testing.T, a *matrix.Dense[float64], b []float64) ([]float64, int) {
	t.Helper()
	work := a.Clone()
	pivot, err := matrix.NewVec[uint](a.Rows())
	require.NoError(t, err)
	parity, err := lu.Decompose[float64](work, pivot)
	require.NoError(t, err)
	x := matrix.NewVecFrom(b)
	require.NoError(t, lu.SolveInPlace[float64](work, pivot, x))

	return x.Slice(), parity
}

func TestSolveAll_MatchesSequential(t *testing.T) {
	t.Parallel()

	for _, workers := range []int{1, 3, 8, 64} {
		const count = 20
		jobs := make([]batch.Job[float64], count)
		wantX := make([][]float64, count)
		wantP := make([]int, count)
		for i := range jobs {
			a, b := system(t, 2+i%7, int64(i))
			wantX[i], wantP[i] = solveOne(t, a, b)
			x := matrix.NewVecFrom(make([]float64, len(b)))
			jobs[i] = batch.Job[float64]{A: a, B: matrix.NewVecFrom(b), X: x}
		}

		require.NoError(t, batch.SolveAll(context.Background(), jobs, batch.WithWorkers(workers)))
		for i, job := range jobs {
			x := job.X.(*matrix.Vec[float64])
			assert.Equal(t, wantX[i], x.Slice(), "workers=%d job=%d", workers, i)
			assert.Equal(t, wantP[i], job.Parity, "workers=%d job=%d", workers, i)
		}
	}
}

func TestSolveAll_AliasedRHS(t *testing.T) {
	t.Parallel()

	a, b := system(t, 5, 9)
	want, _ := solveOne(t, a, b)
	v := matrix.NewVecFrom(b)

	jobs := []batch.Job[float64]{{A: a, B: v, X: v}}
	require.NoError(t, batch.SolveAll(context.Background(), jobs))
	assert.Equal(t, want, v.Slice())
}

func TestSolveAll_FirstErrorWins(t *testing.T) {
	t.Parallel()

	jobs := make([]batch.Job[float64], 4)
	for i := range jobs {
		a, b := system(t, 3, int64(i))
		jobs[i] = batch.Job[float64]{A: a, B: matrix.NewVecFrom(b), X: matrix.NewVecFrom(b)}
	}
	zero, err := matrix.NewDense[float64](3, 3)
	require.NoError(t, err)
	jobs[2].A = zero

	err = batch.SolveAll(context.Background(), jobs, batch.WithWorkers(1))
	require.ErrorIs(t, err, lu.ErrSingular)
	assert.Contains(t, err.Error(), "job 2: ")

	// One sequential worker: earlier jobs finished, later ones never ran.
	assert.NotZero(t, jobs[0].Parity)
	assert.NotZero(t, jobs[1].Parity)
	assert.Zero(t, jobs[3].Parity)
}

func TestSolveAll_InvalidJobs(t *testing.T) {
	t.Parallel()

	a, b := system(t, 3, 1)
	tests := []struct {
		name string
		job  batch.Job[float64]
		want error
	}{
		{"nil A", batch.Job[float64]{B: matrix.NewVecFrom(b), X: matrix.NewVecFrom(b)}, matrix.ErrNilMatrix},
		{"short B", batch.Job[float64]{A: a.Clone(), B: matrix.NewVecFrom(b[:2]), X: matrix.NewVecFrom(b)}, matrix.ErrDimensionMismatch},
		{"nil X", batch.Job[float64]{A: a.Clone(), B: matrix.NewVecFrom(b)}, matrix.ErrNilMatrix},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := batch.SolveAll(context.Background(), []batch.Job[float64]{tc.job})
			require.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), "job 0: ")
		})
	}
}

func TestSolveAll_CanceledContext(t *testing.T) {
	t.Parallel()

	a, b := system(t, 3, 5)
	jobs := []batch.Job[float64]{{A: a, B: matrix.NewVecFrom(b), X: matrix.NewVecFrom(b)}}
	before := a.Clone()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := batch.SolveAll(ctx, jobs)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, before.RawData(), a.RawData(), "no job may start after cancellation")
}

func TestSolveAll_Empty(t *testing.T) {
	t.Parallel()

	require.NoError(t, batch.SolveAll[float64](context.Background(), nil))
	require.NoError(t, batch.InvertAll[float64](context.Background(), nil))
}

func TestInvertAll(t *testing.T) {
	t.Parallel()

	const count = 9
	mats := make([]matrix.Matrix[float64], count)
	origs := make([]*matrix.Dense[float64], count)
	for i := range mats {
		a, _ := system(t, 1+i, int64(100+i))
		origs[i] = a.Clone()
		mats[i] = a
	}

	require.NoError(t, batch.InvertAll(context.Background(), mats, batch.WithWorkers(4)))
	for i, m := range mats {
		prod, err := matrix.Mul[float64](origs[i], m)
		require.NoError(t, err)
		n := prod.Rows()
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				want := 0.0
				if r == c {
					want = 1
				}
				v, err := prod.At(r, c)
				require.NoError(t, err)
				require.InDelta(t, want, v, 1e-9, "mat %d [%d,%d]", i, r, c)
			}
		}
	}
}

func TestInvertAll_KernelOptions(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseFrom([][]float64{{1e-3, 0}, {0, 1}})
	require.NoError(t, err)
	mats := []matrix.Matrix[float64]{m}

	err = batch.InvertAll(context.Background(), mats, batch.WithKernelOptions(lu.WithTolerance(1e-2)))
	require.ErrorIs(t, err, lu.ErrSingular)
}

func TestBatch_Logger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	a, _ := system(t, 2, 1)

	require.NoError(t, batch.InvertAll(context.Background(), []matrix.Matrix[float64]{a}, batch.WithLogger(l)))
	assert.Contains(t, buf.String(), "batch: range done")
	assert.Contains(t, buf.String(), "end=1")
}

func TestWithWorkers_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { batch.WithWorkers(0) })
	assert.NotPanics(t, func() { batch.WithWorkers(1) })
}
