// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Map applies fn to every item concurrently and returns results and errors indexed like
// items. A failing item does not stop the others; only ctx cancellation does, in which
// case unvisited items report ctx's error.
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(context.Context, T) (R, error),
) ([]R, []error) {
	results := make([]R, len(items))
	errs := make([]error, len(items))
	visited := make([]bool, len(items))

	run(ctx, workerCount, len(items), func(ctx context.Context, i int) {
		visited[i] = true
		results[i], errs[i] = fn(ctx, items[i])
	})

	for i := range items {
		if !visited[i] {
			errs[i] = context.Cause(ctx)
		}
	}
	return results, errs
}

// run feeds indexes [0, n) to workerCount workers until ctx is done.
func run(ctx context.Context, workerCount, n int, work func(context.Context, int)) {
	if workerCount <= 0 {
		workerCount = 1
	}

	tasks := make(chan int, workerCount)
	wg := sync.WaitGroup{}
	for w := 0; w < workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-tasks:
					if !ok {
						return
					}
					work(ctx, i)
				}
			}
		}()
	}

	go func() {
		defer close(tasks)
		for i := 0; i < n; i++ {
			select {
			case <-ctx.Done():
				return
			case tasks <- i:
			}
		}
	}()

	wg.Wait()
}
