package raster

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// runParallel runs fn once per non-empty region, one goroutine each, and
// joins them all before returning. Regions never overlap (the planner is the
// single source of region assignment), so workers share the output buffer
// without locking.
//
// Cancellation is cooperative: each worker checks the signal before starting
// and between rows. A canceled pass still joins every worker, then reports
// the context error; partial writes to the output are not rolled back, so a
// canceled result must be treated as unusable. Any worker failure fails the
// whole pass, again only after all workers have been observed to finish.
func runParallel(ctx context.Context, part Partition, fn func(context.Context, Region) error) error {
	errs := make([]error, len(part))
	var wg sync.WaitGroup
	for i, reg := range part {
		if reg.Empty() {
			continue
		}
		wg.Add(1)
		go func(i int, reg Region) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			errs[i] = fn(ctx, reg)
		}(i, reg)
	}
	wg.Wait()

	var canceled error
	for i, err := range errs {
		if err == nil {
			continue
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			canceled = err
			continue
		}
		return fmt.Errorf("worker %d: %w", i, err)
	}
	return canceled
}
