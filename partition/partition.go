// SPDX-License-Identifier: MIT

package partition

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
)

// Pairs splits n entities into contiguous ranges holding roughly equal
// numbers of pairs, for workloads where entity i interacts with every
// entity k > i (n·(n-1)/2 pairs in total).
//
// Implementation:
//   - Stage 1: total = n·(n-1)/2; target = total/threads, where threads is
//     WithThreads or max(DefaultMinThreads, runtime.NumCPU()).
//   - Stage 2: Below the MinConcurrent threshold the target is the total, so
//     all pairs land in one range.
//   - Stage 3: Walk the entities, adding n-1-i pairs per entity until the
//     range reaches the target, then start the next range.
//
// Behavior highlights:
//   - Ranges are ascending, contiguous and disjoint.
//   - Ranges owning zero pairs are dropped; the last entity owns none, so it
//     may not appear in any range.
//   - Early ranges are short and late ranges long, since low indices own
//     more pairs.
//   - n < 2 yields no ranges.
//
// Errors:
//   - ErrNegativeCount if n < 0.
//
// Complexity:
//   - Time O(n), Space O(threads).
func Pairs(n int, opts ...Option) ([]Range, error) {
	if n < 0 {
		return nil, fmt.Errorf("Pairs(%d): %w", n, ErrNegativeCount)
	}
	o := gatherOptions(opts...)
	threads := o.threads
	if threads == 0 {
		threads = max(DefaultMinThreads, runtime.NumCPU())
	}

	total := n * (n - 1) / 2
	if n < 2 {
		total = 0
	}
	target := total / threads
	if n < o.minConcurrent || target == 0 {
		target = total
	}
	if o.logger != nil {
		o.logger.LogAttrs(context.Background(), slog.LevelDebug, "partition: pair ranges",
			slog.Int("entities", n),
			slog.Int("pairs", total),
			slog.Int("pairs_per_range", target),
			slog.Int("threads", threads))
	}
	if total == 0 {
		return nil, nil
	}

	ranges := make([]Range, 0, threads+1)
	var start, pairs int
	for i := 0; i < n; {
		start, pairs = i, 0
		for pairs < target && i < n {
			pairs += n - (i + 1)
			i++
		}
		if pairs > 0 {
			ranges = append(ranges, Range{Start: start, End: i, Pairs: pairs})
		}
	}

	return ranges, nil
}

// Even splits n independent items into at most parts contiguous ranges whose
// lengths differ by at most one; the first n%parts ranges get the extra item.
// It never returns empty ranges, so fewer than parts ranges come back when
// n < parts, and none when n == 0.
//
// Errors: ErrNegativeCount if n < 0, ErrInvalidParts if parts <= 0.
func Even(n, parts int) ([]Range, error) {
	if n < 0 {
		return nil, fmt.Errorf("Even(%d,%d): %w", n, parts, ErrNegativeCount)
	}
	if parts <= 0 {
		return nil, fmt.Errorf("Even(%d,%d): %w", n, parts, ErrInvalidParts)
	}
	if parts > n {
		parts = n
	}
	if parts == 0 {
		return nil, nil
	}

	size, extra := n/parts, n%parts
	ranges := make([]Range, parts)
	start := 0
	for p := range ranges {
		end := start + size
		if p < extra {
			end++
		}
		ranges[p] = Range{Start: start, End: end}
		start = end
	}

	return ranges, nil
}
