package task

import "github.com/outcome-go/outcome/pkg/outcome"

// Map transforms the eventual success value; a failure passes through
// untouched.
func Map[In, Out any](t Task[In], f func(v In) Out) Task[Out] {
	out, settle := newTask[Out]()
	go func() {
		settle(outcome.Map(t.wait(), f))
	}()
	return out
}

// MapErr transforms the eventual error channel.
func MapErr[A any](t Task[A], f func(err error) error) Task[A] {
	out, settle := newTask[A]()
	go func() {
		settle(t.wait().MapErr(f))
	}()
	return out
}

// AndThen binds a task-returning function. On failure f is never started
// and the error is returned as-is.
func AndThen[In, Out any](t Task[In], f func(v In) Task[Out]) Task[Out] {
	out, settle := newTask[Out]()
	go func() {
		r := t.wait()
		if r.IsErr() {
			settle(outcome.ErrFrom[In, Out](r))
			return
		}
		settle(f(r.Value()).wait())
	}()
	return out
}

// And joins two already-running tasks into a pair of successes. Both
// operands are in flight before the join exists; the join itself starts
// no work. The left operand's failure wins and is reported without
// consuming the right operand's success.
func And[A, B any](a Task[A], b Task[B]) Task[outcome.Pair[A, B]] {
	out, settle := newTask[outcome.Pair[A, B]]()
	go func() {
		ra := a.wait()
		if ra.IsErr() {
			settle(outcome.ErrFrom[A, outcome.Pair[A, B]](ra))
			return
		}
		rb := b.wait()
		if rb.IsErr() {
			settle(outcome.ErrFrom[B, outcome.Pair[A, B]](rb))
			return
		}
		settle(outcome.Ok(outcome.Pair[A, B]{First: ra.Value(), Second: rb.Value()}))
	}()
	return out
}

// Or settles with the left task when it succeeds, otherwise with the
// right one. On a double failure the right operand's error wins.
func Or[A any](a, b Task[A]) Task[A] {
	out, settle := newTask[A]()
	go func() {
		ra := a.wait()
		if ra.IsOk() {
			settle(ra)
			return
		}
		settle(b.wait())
	}()
	return out
}

// OrElse binds a recovery function over the eventual error.
func OrElse[A any](t Task[A], f func(err error) Task[A]) Task[A] {
	out, settle := newTask[A]()
	go func() {
		r := t.wait()
		if r.IsOk() {
			settle(r)
			return
		}
		settle(f(r.Err()).wait())
	}()
	return out
}

// Flatten collapses one level of task nesting.
func Flatten[A any](t Task[Task[A]]) Task[A] {
	out, settle := newTask[A]()
	go func() {
		r := t.wait()
		if r.IsErr() {
			settle(outcome.ErrFrom[Task[A], A](r))
			return
		}
		settle(r.Value().wait())
	}()
	return out
}

// Tee runs a side effect on the eventual success value without changing
// the task's outcome.
func Tee[A any](t Task[A], f func(v A)) Task[A] {
	out, settle := newTask[A]()
	go func() {
		settle(t.wait().Tee(f))
	}()
	return out
}

// TeeErr runs a side effect on the eventual error without changing the
// task's outcome.
func TeeErr[A any](t Task[A], f func(err error)) Task[A] {
	out, settle := newTask[A]()
	go func() {
		settle(t.wait().TeeErr(f))
	}()
	return out
}

// Match folds the settled result into a plain value.
func Match[In, Out any](t Task[In], onOk func(v In) Out, onErr func(err error) Out) *Promise[Out] {
	return NewPromise(func() Out {
		return outcome.Match(t.wait(), onOk, onErr)
	})
}
