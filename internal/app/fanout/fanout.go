// Package fanout applies a function to every item of a slice with bounded
// concurrency. The version service uses it to resolve all declared domains
// in one call.
package fanout

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Result is the outcome for one item: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for each item with at most maxWorkers calls in flight
// (minimum 1) and returns one Result per item, in input order. One failing
// item does not stop the others.
//
// Slots are handed out in input order. Once ctx is done, items that have not
// started yet get ctx.Err() without fn being called; calls already running
// are left to observe ctx themselves.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	slots := semaphore.NewWeighted(int64(max(maxWorkers, 1)))

	var wg sync.WaitGroup
	for i, item := range items {
		if err := slots.Acquire(ctx, 1); err != nil {
			for j := i; j < len(items); j++ {
				results[j].Err = err
			}
			break
		}
		wg.Go(func() {
			defer slots.Release(1)
			v, err := fn(ctx, item)
			results[i] = Result[R]{Value: v, Err: err}
		})
	}
	wg.Wait()

	return results
}
