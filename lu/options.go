// SPDX-License-Identifier: MIT

// Package lu: functional configuration for the kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper that resolves setters against defaults.
//
// Design goals:
//   - No global state: tolerance and telemetry are per call.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package lu

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/crout/matrix"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance selects the machine epsilon of the element type
	// (matrix.Epsilon[T]) as the singularity threshold.
	DefaultTolerance = 0.0

	// ProgressSteps is the number of progress reports emitted over the
	// columns of one decomposition (roughly every 10%).
	ProgressSteps = 10
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid = "lu: WithTolerance: tol must be finite and > 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	tol      float64  // > 0, or DefaultTolerance for machine epsilon
	reporter Reporter // nil disables progress telemetry
}

// WithTolerance sets the singularity threshold used by Decompose: a row whose
// largest magnitude is <= tol fails with ErrSingular, and a pivot whose
// magnitude is <= tol is clamped to tol.
//
// Panics when tol is NaN, ±Inf or not strictly positive.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithReporter installs a progress sink for Decompose. A nil r disables
// reporting. Results never depend on the reporter.
func WithReporter(r Reporter) Option {
	return func(o *Options) { o.reporter = r }
}

// WithLogger reports decomposition progress at Debug level on l.
// A nil l falls back to slog.Default() at report time.
func WithLogger(l *slog.Logger) Option {
	return WithReporter(LogReporter{Logger: l, Level: slog.LevelDebug})
}

// gatherOptions applies user-provided setters on top of defaults
// (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		tol:      DefaultTolerance,
		reporter: nil,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// tolerance resolves the effective threshold for element type T.
// A user tolerance that underflows to zero in T falls back to epsilon.
func tolerance[T matrix.Float](o Options) T {
	if o.tol > 0 {
		if t := T(o.tol); t > 0 {
			return t
		}
	}

	return matrix.Epsilon[T]()
}
