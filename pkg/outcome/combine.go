package outcome

// Pair carries the two success values joined by And.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Map transforms the success value; Err passes through untouched.
func Map[In, Out any](r Result[In], f func(In) Out) Result[Out] {
	if r.IsErr() {
		return ErrFrom[In, Out](r)
	}
	return Ok(f(r.val))
}

// AndThen binds a result-returning function. Err short-circuits without
// invoking f.
func AndThen[In, Out any](r Result[In], f func(In) Result[Out]) Result[Out] {
	if r.IsErr() {
		return ErrFrom[In, Out](r)
	}
	return f(r.val)
}

// And joins two results into a pair of successes. On failure the left
// operand's error wins, even when both failed.
func And[A, B any](a Result[A], b Result[B]) Result[Pair[A, B]] {
	if a.IsErr() {
		return ErrFrom[A, Pair[A, B]](a)
	}
	if b.IsErr() {
		return ErrFrom[B, Pair[A, B]](b)
	}
	return Ok(Pair[A, B]{First: a.val, Second: b.val})
}

// Flatten collapses one level of result nesting.
func Flatten[T any](r Result[Result[T]]) Result[T] {
	if r.IsErr() {
		return ErrFrom[Result[T], T](r)
	}
	return r.val
}

// Match folds the result into a plain value via the matching handler.
func Match[In, Out any](r Result[In], onOk func(v In) Out, onErr func(err error) Out) Out {
	if r.isOk {
		return onOk(r.val)
	}
	return onErr(r.err)
}
