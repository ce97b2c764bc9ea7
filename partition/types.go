// SPDX-License-Identifier: MIT

// Package partition defines index ranges, options and errors for splitting a
// collection across workers.
package partition

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrEmptyRange is returned by NewRange when start >= end.
	ErrEmptyRange = errors.New("partition: range start must be smaller than its end")

	// ErrNegativeCount is returned when an entity count or a pair count is negative.
	ErrNegativeCount = errors.New("partition: count must be >= 0")

	// ErrInvalidParts is returned by Even when parts <= 0.
	ErrInvalidParts = errors.New("partition: parts must be > 0")
)

// Range is the half-open index interval [Start, End) of a collection.
//
// For ranges built by Pairs, Pairs holds the number of (i, k) pairs with
// Start <= i < End and i < k < n, i.e. the pairs "owned" by the range when
// every entity is paired with all entities of higher index. Ranges built by
// Even carry Pairs = 0.
type Range struct {
	Start int
	End   int
	Pairs int
}

// NewRange validates and builds a Range.
func NewRange(start, end, pairs int) (Range, error) {
	if start < 0 || pairs < 0 {
		return Range{}, fmt.Errorf("NewRange(%d,%d,%d): %w", start, end, pairs, ErrNegativeCount)
	}
	if start >= end {
		return Range{}, fmt.Errorf("NewRange(%d,%d,%d): %w", start, end, pairs, ErrEmptyRange)
	}

	return Range{Start: start, End: end, Pairs: pairs}, nil
}

// Len returns End - Start.
func (r Range) Len() int { return r.End - r.Start }

// String renders the range as "[start,end) pairs=p".
func (r Range) String() string {
	return fmt.Sprintf("[%d,%d) pairs=%d", r.Start, r.End, r.Pairs)
}

// ---------- Options ----------

const (
	// DefaultMinThreads is the lower bound on the worker count assumed by
	// Pairs when WithThreads is not given.
	DefaultMinThreads = 4

	// DefaultMinConcurrent is the entity count below which Pairs returns a
	// single range: splitting small collections costs more than it saves.
	DefaultMinConcurrent = 1000
)

const (
	panicThreadsInvalid       = "partition: WithThreads: n must be > 0"
	panicMinConcurrentInvalid = "partition: WithMinConcurrent: n must be >= 0"
)

// Option configures Pairs.
type Option func(*Options)

// Options holds the resolved Pairs configuration.
type Options struct {
	threads       int // 0 selects max(DefaultMinThreads, runtime.NumCPU())
	minConcurrent int
	logger        *slog.Logger
}

// WithThreads fixes the number of workers ranges are balanced for.
// Panics if n <= 0.
func WithThreads(n int) Option {
	if n <= 0 {
		panic(panicThreadsInvalid)
	}

	return func(o *Options) { o.threads = n }
}

// WithMinConcurrent sets the entity count below which no split happens.
// Panics if n < 0.
func WithMinConcurrent(n int) Option {
	if n < 0 {
		panic(panicMinConcurrentInvalid)
	}

	return func(o *Options) { o.minConcurrent = n }
}

// WithLogger receives a Debug record with the pair totals of each Pairs call.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func gatherOptions(user ...Option) Options {
	o := Options{minConcurrent: DefaultMinConcurrent}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
