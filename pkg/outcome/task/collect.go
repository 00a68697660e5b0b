package task

import (
	"context"

	"github.com/outcome-go/outcome/pkg/outcome"
)

// Collect applies f to items in order, awaiting each task before moving
// on. The first failure settles the whole task with that exact error and
// f is not invoked on any later item.
func Collect[T, A any](ctx context.Context, items []T, f func(item T) Task[A]) Task[[]A] {
	out, settle := newTask[[]A]()
	go func() {
		vals := make([]A, 0, len(items))
		for _, item := range items {
			r := f(item).Await(ctx)
			if r.IsErr() {
				settle(outcome.ErrFrom[A, []A](r))
				return
			}
			vals = append(vals, r.Value())
		}
		settle(outcome.Ok(vals))
	}()
	return out
}

// Transpose awaits already-running tasks sequentially in slice order. The
// reported failure is the earliest one in iteration order, regardless of
// which task settled first; later tasks still run to completion, only the
// propagation stops.
func Transpose[A any](ctx context.Context, tasks []Task[A]) Task[[]A] {
	return Collect(ctx, tasks, func(t Task[A]) Task[A] { return t })
}

// CollectPromise applies a promise-returning function to the success
// value and re-associates the wrappers: a failure settles immediately,
// a success defers to the produced promise (a fault in it becomes the
// error).
func CollectPromise[T, U any](r outcome.Result[T], f func(v T) *Promise[U]) *Promise[outcome.Result[U]] {
	if r.IsErr() {
		return Resolved(outcome.ErrFrom[T, U](r))
	}
	p := f(r.Value())
	return NewPromise(func() outcome.Result[U] {
		return outcome.Of(p.wait())
	})
}

// Partition awaits every task and splits the outcomes into successes and
// failures, both in slice order. It never short-circuits.
func Partition[A any](ctx context.Context, tasks []Task[A]) ([]A, []error) {
	results := make([]outcome.Result[A], 0, len(tasks))
	for _, t := range tasks {
		results = append(results, t.Await(ctx))
	}
	return outcome.PartitionResults(results)
}
