package strips

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrNilWorker indicates Run was called without a worker function.
	ErrNilWorker = errors.New("strips: worker function must not be nil")
	// ErrNegativeInput indicates a negative total or margin.
	ErrNegativeInput = errors.New("strips: total and margin must be non-negative")
)

// Strip describes one unit of work. [Start, End) is the owned line range the
// worker is responsible for writing; [MarginStart, MarginEnd) is the extended
// read range including up to margin lines of context on each side, clamped to
// the input bounds.
type Strip struct {
	Start, End             int
	MarginStart, MarginEnd int
}

// Worker processes a single strip. It may read [MarginStart, MarginEnd) of
// shared input but must write only within [Start, End) of shared output.
type Worker func(ctx context.Context, s Strip) error

// Split computes the strip decomposition of [0, total) for the given worker
// count and margin, without running anything. workers < 1 defaults to
// GOMAXPROCS. Exposed for callers that schedule strips themselves.
// Complexity: O(workers).
func Split(total, workers, margin int) []Strip {
	if total <= 0 {
		return nil
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > total {
		workers = total
	}
	// Ceiling division keeps strip sizes within one line of each other.
	size := (total + workers - 1) / workers
	out := make([]Strip, 0, workers)
	for start := 0; start < total; start += size {
		end := start + size
		if end > total {
			end = total
		}
		ms := start - margin
		if ms < 0 {
			ms = 0
		}
		me := end + margin
		if me > total {
			me = total
		}
		out = append(out, Strip{Start: start, End: end, MarginStart: ms, MarginEnd: me})
	}
	return out
}

// Run executes fn over every strip of [0, total) concurrently and returns the
// first error. A zero total is a no-op. Run blocks until every strip has
// finished or the group context is cancelled.
// Complexity: O(total) total work across min(workers, total) goroutines.
func Run(ctx context.Context, total, workers, margin int, fn Worker) error {
	if fn == nil {
		return ErrNilWorker
	}
	if total < 0 || margin < 0 {
		return ErrNegativeInput
	}
	parts := Split(total, workers, margin)
	if len(parts) == 0 {
		return nil
	}
	if len(parts) == 1 {
		return fn(ctx, parts[0])
	}
	g, gctx := errgroup.WithContext(ctx)
	for _, s := range parts {
		s := s
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, s)
		})
	}
	return g.Wait()
}
