// Package fanout runs a function over a batch of items with a fixed number
// of worker goroutines and reports which items failed. Batch jobs such as
// closing expired petitions use it to bound load on the store.
package fanout

import (
	"context"
	"errors"
	"sync"
)

// Failure pairs an item with the error processing it returned.
type Failure[T any] struct {
	Item T
	Err  error
}

// Outcome summarises a Run. Failures are in input order.
type Outcome[T any] struct {
	Succeeded int
	Failures  []Failure[T]
}

// Err joins the errors of every failure, or returns nil.
func (o Outcome[T]) Err() error {
	errs := make([]error, 0, len(o.Failures))
	for _, f := range o.Failures {
		errs = append(errs, f.Err)
	}
	return errors.Join(errs...)
}

// Run calls fn for each item with at most workers calls in flight. A
// worker count below one is treated as one.
//
// Items still waiting for a worker when ctx is canceled are not processed;
// they fail with ctx.Err(). Calls already running finish normally, so fn
// should watch ctx itself.
func Run[T any](ctx context.Context, workers int, items []T, fn func(context.Context, T) error) Outcome[T] {
	if len(items) == 0 {
		return Outcome[T]{}
	}
	workers = max(workers, 1)

	errs := make([]error, len(items))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				errs[i] = ctx.Err()
				return
			}

			errs[i] = fn(ctx, item)
		}()
	}
	wg.Wait()

	var out Outcome[T]
	for i, err := range errs {
		if err != nil {
			out.Failures = append(out.Failures, Failure[T]{Item: items[i], Err: err})
			continue
		}
		out.Succeeded++
	}
	return out
}
