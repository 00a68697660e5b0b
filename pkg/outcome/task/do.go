package task

import (
	"context"
	"fmt"

	"github.com/outcome-go/outcome/pkg/outcome"
)

// Scope marks a running asynchronous do block and carries the context its
// steps are awaited with.
type Scope struct {
	ctx context.Context
}

// Context returns the context the block was started with.
func (s *Scope) Context() context.Context {
	return s.ctx
}

type abort struct {
	err error
}

// Do runs a block of sequential steps on its own goroutine, returning the
// task of its outcome. Inside the block, bind step values with Eval; the
// first failing step settles the task with that exact error and no later
// step is evaluated.
//
//	t := task.Do(ctx, func(s *task.Scope) int {
//		order := task.Eval[Order](s, loadOrder(id))
//		price := task.Eval[int](s, fetchPrice(order))
//		return price
//	})
func Do[A any](ctx context.Context, block func(s *Scope) A) Task[A] {
	out, settle := newTask[A]()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				a, ok := r.(*abort)
				if !ok {
					panic(r)
				}
				settle(outcome.Err[A](a.err))
			}
		}()
		settle(outcome.Ok(block(&Scope{ctx: ctx})))
	}()
	return out
}

// DoPromise is Do settling into a bare deferred result instead of a task.
func DoPromise[A any](ctx context.Context, block func(s *Scope) A) *Promise[outcome.Result[A]] {
	t := Do(ctx, block)
	return NewPromise(func() outcome.Result[A] {
		return t.wait()
	})
}

// Eval normalizes one step and binds it: the success payload is returned
// to the block, a failure aborts the whole block with that exact error.
// Recognized step shapes are Result[B], Option[B] (absence lifts to
// ErrNoValue), Task[B], *Promise[B] (a fault becomes the error),
// *Promise[Result[B]] and a plain B. Any other shape is a programmer
// error and panics with a diagnostic naming it.
func Eval[B any](s *Scope, step any) B {
	switch v := step.(type) {
	case outcome.Result[B]:
		return bind(v)
	case outcome.Option[B]:
		if v.IsNone() {
			panic(&abort{err: outcome.ErrNoValue})
		}
		return v.Unwrap()
	case Task[B]:
		return bind(v.Await(s.ctx))
	case *Promise[B]:
		val, err := v.Await(s.ctx)
		if err != nil {
			panic(&abort{err: err})
		}
		return val
	case *Promise[outcome.Result[B]]:
		r, err := v.Await(s.ctx)
		if err != nil {
			panic(&abort{err: err})
		}
		return bind(r)
	case B:
		return v
	default:
		panic(fmt.Sprintf("task: do block cannot bind a step of type %T", step))
	}
}

func bind[B any](r outcome.Result[B]) B {
	if r.IsErr() {
		panic(&abort{err: r.Err()})
	}
	return r.Value()
}
