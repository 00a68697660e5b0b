package outcome

import "fmt"

// Scope marks a running do block. It exists so Eval can only be called
// from inside Do.
type Scope struct{}

// abort is the panic payload carrying a failing step's error out of the
// block. Anything else crossing the recover is a programmer fault and is
// re-raised.
type abort struct {
	err   error
	stack string
}

// Do runs a block of sequential steps, short-circuiting on the first
// failing step. Inside the block, bind step values with Eval; the block's
// return value becomes the Ok payload when every step succeeds.
//
//	r := outcome.Do(func(s *outcome.Scope) int {
//		a := outcome.Eval[int](s, parse(x))
//		b := outcome.Eval[int](s, lookup(a))
//		return a + b
//	})
func Do[A any](block func(s *Scope) A) (res Result[A]) {
	defer func() {
		if r := recover(); r != nil {
			a, ok := r.(*abort)
			if !ok {
				panic(r)
			}
			res = Err[A](a.err)
			res.stack = a.stack
		}
	}()
	return Ok(block(&Scope{}))
}

// Eval normalizes one step and binds it: the success payload is returned
// to the block, a failure aborts the whole block with that exact error.
// Recognized step shapes are Result[B], Option[B] (absence lifts to
// ErrNoValue) and a plain B. Any other shape is a programmer error and
// panics with a diagnostic naming it; asynchronous steps belong in a task
// block.
func Eval[B any](s *Scope, step any) B {
	switch v := step.(type) {
	case Result[B]:
		if v.IsErr() {
			panic(&abort{err: v.err, stack: v.stack})
		}
		return v.val
	case Option[B]:
		if v.IsNone() {
			panic(&abort{err: ErrNoValue})
		}
		return v.val
	case B:
		return v
	default:
		panic(fmt.Sprintf("outcome: do block cannot bind a step of type %T", step))
	}
}
