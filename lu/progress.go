// SPDX-License-Identifier: MIT

package lu

import (
	"context"
	"log/slog"
)

// Reporter receives decomposition progress as a percentage in [0, 100].
// Implementations must not mutate kernel inputs.
type Reporter interface {
	Report(percent float64)
}

// ReporterFunc adapts a plain function to Reporter.
type ReporterFunc func(percent float64)

// Report calls f(percent).
func (f ReporterFunc) Report(percent float64) { f(percent) }

// LogReporter writes one structured record per progress step.
// The zero value logs at Info level on slog.Default().
type LogReporter struct {
	Logger *slog.Logger
	Level  slog.Level
}

// Report logs percent under the "percent" attribute.
func (r LogReporter) Report(percent float64) {
	l := r.Logger
	if l == nil {
		l = slog.Default()
	}
	l.Log(context.Background(), r.Level, "lu: decomposition progress",
		slog.Float64("percent", percent))
}

// progress throttles reports to every n/ProgressSteps columns.
type progress struct {
	r    Reporter
	n    int
	step int
}

func newProgress(r Reporter, n int) progress {
	step := n / ProgressSteps
	if step < 1 {
		step = 1
	}

	return progress{r: r, n: n, step: step}
}

// column reports before column j is processed.
func (p progress) column(j int) {
	if p.r == nil || j%p.step != 0 {
		return
	}
	p.r.Report(float64(j) / float64(p.n) * 100)
}

// done reports completion.
func (p progress) done() {
	if p.r != nil {
		p.r.Report(100)
	}
}
