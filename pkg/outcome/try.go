package outcome

// Try runs a fallible function, adapting both its returned error and any
// panic into an Err result. A panicking value that is not already an error
// is stringified (JSON for non-text values) exactly once at this boundary.
func Try[T any](fn func() (T, error)) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = Err[T](AsError(r))
		}
	}()
	return Of(fn())
}

// TryCatch is Try with the resulting error tagged by kind.
func TryCatch[T any](kind string, fn func() (T, error)) Result[T] {
	return Try(fn).MapErr(func(err error) error {
		return NewExn(kind, err)
	})
}

// Fn adapts a fallible function into a result-returning one, tagging
// failures with kind.
func Fn[In, Out any](kind string, fn func(in In) (Out, error)) func(in In) Result[Out] {
	return func(in In) Result[Out] {
		return TryCatch(kind, func() (Out, error) {
			return fn(in)
		})
	}
}
