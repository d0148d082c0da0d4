package async

import (
	"context"
	"sync"
)

// Run executes fn once per item with at most limit invocations in
// flight at any instant and returns one result per item.
//
// Items beyond the limit queue until a slot frees. A failing fn must
// report failure through its result value; nothing here cancels,
// skips, or delays sibling items, and Run returns only after every
// item has been processed. Results arrive in completion order, not
// item order.
func Run[T, R any](ctx context.Context, items []T, limit int, fn func(context.Context, T) R) []R {
	if len(items) == 0 {
		return nil
	}
	if limit < 1 {
		limit = 1
	}

	sem := make(chan struct{}, limit)
	resultChan := make(chan R, len(items))

	var wg sync.WaitGroup
	for _, item := range items {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			resultChan <- fn(ctx, item)
		}()
	}
	wg.Wait()
	close(resultChan)

	results := make([]R, 0, len(items))
	for r := range resultChan {
		results = append(results, r)
	}
	return results
}
