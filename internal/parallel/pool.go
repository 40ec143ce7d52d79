// Package parallel provides a small, fixed-size worker pool used by
// the resolution engine's optional parallel resolvent-generation mode
// (spec §5: parallelism is a permitted extension that must preserve
// the determinism of the reported outcome). It intentionally does not
// attempt dynamic rescaling, work stealing, or deadlock detection: a
// saturation session runs to completion synchronously and has no
// notion of a stalled worker to detect, so that machinery would be
// pure overhead here.
package parallel

import (
	"context"
	"runtime"
	"sync"
)

// Pool bounds the number of goroutines used to evaluate a batch of
// independent jobs. The zero value is not ready to use; construct one
// with New.
type Pool struct {
	workers int
}

// New returns a Pool with the given number of workers. A
// non-positive count defaults to runtime.NumCPU().
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Pool{workers: workers}
}

// Map evaluates fn(i) for every i in [0,n) using at most p.workers
// goroutines and returns the results indexed by i, so a caller that
// needs a deterministic merge order never has to re-sort: results[i]
// always corresponds to fn(i), regardless of which worker computed it
// or in what order it finished.
//
// If ctx is cancelled before every index has been dispatched, Map
// stops handing out new work, waits for in-flight jobs to finish, and
// returns the partially-filled slice together with ctx.Err(). Indices
// never dispatched are left at T's zero value.
func Map[T any](ctx context.Context, p *Pool, n int, fn func(i int) T) ([]T, error) {
	results := make([]T, n)
	if n == 0 {
		return results, nil
	}

	workers := p.workers
	if workers > n {
		workers = n
	}

	indices := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indices {
				results[i] = fn(i)
			}
		}()
	}

	var cancelled bool
dispatch:
	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			cancelled = true
			break
		}
		select {
		case indices <- i:
		case <-ctx.Done():
			cancelled = true
			break dispatch
		}
	}
	close(indices)
	wg.Wait()

	if cancelled {
		return results, ctx.Err()
	}
	return results, nil
}
