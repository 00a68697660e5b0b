package task

import "github.com/outcome-go/outcome/pkg/outcome"

// Try starts a fallible function, adapting both its returned error and
// any panic into an eventual Err, under the same contract as outcome.Try.
func Try[A any](fn func() (A, error)) Task[A] {
	return Go(func() outcome.Result[A] {
		return outcome.Try(fn)
	})
}

// TryCatch is Try with the resulting error tagged by kind.
func TryCatch[A any](kind string, fn func() (A, error)) Task[A] {
	return Go(func() outcome.Result[A] {
		return outcome.TryCatch(kind, fn)
	})
}

// Fn adapts a fallible function into a task-returning one, tagging
// failures with kind.
func Fn[In, Out any](kind string, fn func(in In) (Out, error)) func(in In) Task[Out] {
	adapted := outcome.Fn(kind, fn)
	return func(in In) Task[Out] {
		return Go(func() outcome.Result[Out] {
			return adapted(in)
		})
	}
}
