package outcome

// CollectOption flips Result[Option[T]] into Option[Result[T]]. Inner
// absence wins: Ok(None) becomes None. A failure stays observable, just
// wrapped: Err becomes Some(Err).
func CollectOption[T any](r Result[Option[T]]) Option[Result[T]] {
	if r.IsErr() {
		return Some(ErrFrom[Option[T], T](r))
	}
	if r.val.IsNone() {
		return None[Result[T]]()
	}
	return Some(Ok(r.val.val))
}

// TransposeOption applies a option-returning function to the success value
// and re-associates the wrappers, as CollectOption does.
func TransposeOption[T, U any](r Result[T], f func(v T) Option[U]) Option[Result[U]] {
	return CollectOption(Map(r, f))
}

// CollectSlice applies a slice-returning function to the success value and
// distributes the result over the elements. A failure yields a single-
// element slice carrying it.
func CollectSlice[T, U any](r Result[T], f func(v T) []U) []Result[U] {
	if r.IsErr() {
		return []Result[U]{ErrFrom[T, U](r)}
	}
	items := f(r.val)
	out := make([]Result[U], 0, len(items))
	for _, item := range items {
		out = append(out, Ok(item))
	}
	return out
}

// CollectNullable applies a pointer-returning function to the success
// value. A nil inner pointer wins: Ok + nil becomes nil. A failure stays
// observable behind a non-nil pointer.
func CollectNullable[T, U any](r Result[T], f func(v T) *U) *Result[U] {
	if r.IsErr() {
		e := ErrFrom[T, U](r)
		return &e
	}
	p := f(r.val)
	if p == nil {
		return nil
	}
	ok := Ok(*p)
	return &ok
}
