package task

import (
	"context"

	"github.com/outcome-go/outcome/pkg/outcome"
)

// Task is a hot asynchronous computation settling to a Result. The
// computation runs once; the settled result is memoized behind a latch
// closed exactly once, so re-awaiting never re-triggers the work.
type Task[A any] struct {
	s *taskState[A]
}

type taskState[A any] struct {
	done chan struct{}
	res  outcome.Result[A]
}

func newTask[A any]() (Task[A], func(r outcome.Result[A])) {
	t := Task[A]{s: &taskState[A]{done: make(chan struct{})}}
	settle := func(r outcome.Result[A]) {
		t.s.res = r
		close(t.s.done)
	}
	return t, settle
}

// Go starts fn on its own goroutine. A panic in fn is adapted into an Err
// exactly as Try would adapt it.
func Go[A any](fn func() outcome.Result[A]) Task[A] {
	t, settle := newTask[A]()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				settle(outcome.Err[A](outcome.AsError(r)))
			}
		}()
		settle(fn())
	}()
	return t
}

// From wraps a deferred result. A fault in the producing computation
// propagates as the error.
func From[A any](p *Promise[outcome.Result[A]]) Task[A] {
	t, settle := newTask[A]()
	go func() {
		r, err := p.wait()
		if err != nil {
			settle(outcome.Err[A](err))
			return
		}
		settle(r)
	}()
	return t
}

// FromPromise wraps a deferred plain value: it succeeds with the value
// once settled, and fails only if the producing computation faulted.
func FromPromise[A any](p *Promise[A]) Task[A] {
	t, settle := newTask[A]()
	go func() {
		settle(outcome.Of(p.wait()))
	}()
	return t
}

// FromResult wraps an already-known result in a settled task.
func FromResult[A any](r outcome.Result[A]) Task[A] {
	t, settle := newTask[A]()
	settle(r)
	return t
}

// Resolve returns a task settled with a success.
func Resolve[A any](v A) Task[A] {
	return FromResult(outcome.Ok(v))
}

// Reject returns a task settled with a failure.
func Reject[A any](err error) Task[A] {
	return FromResult(outcome.Err[A](err))
}

// Await blocks until the task settles or ctx expires. Context expiry
// abandons the wait, not the in-flight computation; a later Await can
// still observe the memoized result.
func (t Task[A]) Await(ctx context.Context) outcome.Result[A] {
	select {
	case <-t.s.done:
		return t.s.res
	case <-ctx.Done():
		return outcome.Err[A](ctx.Err())
	}
}

func (t Task[A]) wait() outcome.Result[A] {
	<-t.s.done
	return t.s.res
}

// Done is closed once the task has settled.
func (t Task[A]) Done() <-chan struct{} {
	return t.s.done
}
