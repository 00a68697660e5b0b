package outcome

import (
	"runtime/debug"
	"time"

	"github.com/google/uuid"
)

// Result holds exactly one of a success value or an error. The variant is
// fixed at construction; an explicit flag (not nil-checking of the payload)
// discriminates the two, so Ok of a zero value is representable.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	val       T
	err       error
	isOk      bool
	stack     string
}

func Ok[T any](v T) Result[T] {
	return Result[T]{
		val:       v,
		isOk:      true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Err[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isOk:      false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// ErrValue fails with an arbitrary value adapted into an error: errors are
// kept as-is, strings are used verbatim, anything else is JSON-rendered.
func ErrValue[T any](v any) Result[T] {
	return Err[T](AsError(v))
}

// Of adapts a conventional (value, error) pair.
func Of[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

// ErrFrom propagates the failure of one result into a result of another
// type, preserving the original error, captured stack and stamps.
func ErrFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isOk:      false,
		createdAt: from.createdAt,
		id:        from.id,
		stack:     from.stack,
	}
}

func (r Result[T]) IsOk() bool {
	return r.isOk
}

func (r Result[T]) IsErr() bool {
	return !r.isOk
}

// Value returns the success payload (zero value on Err).
func (r Result[T]) Value() T {
	return r.val
}

func (r Result[T]) Err() error {
	return r.err
}

// Get unpacks the result into a conventional (value, error) pair.
func (r Result[T]) Get() (T, error) {
	return r.val, r.err
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// Stack returns the stack captured by Trace, or "" if none was captured.
func (r Result[T]) Stack() string {
	return r.stack
}

// Trace returns a copy of an Err result carrying the current call stack.
// No-op on Ok and on results that already carry a stack.
func (r Result[T]) Trace() Result[T] {
	if r.isOk || r.stack != "" {
		return r
	}
	r.stack = string(debug.Stack())
	return r
}

// Unwrap returns the success payload. It panics on Err with the rendered
// error text: verbatim for textual errors, indented JSON for value errors.
func (r Result[T]) Unwrap() T {
	if !r.isOk {
		panic(Render(r.err))
	}
	return r.val
}

// UnwrapErr returns the error. It panics on Ok with a rendering of the
// success payload.
func (r Result[T]) UnwrapErr() error {
	if r.isOk {
		panic(renderValue(r.val))
	}
	return r.err
}

// Expect is Unwrap with a caller-supplied context prefix on the panic
// message.
func (r Result[T]) Expect(msg string) T {
	if !r.isOk {
		panic(msg + ": " + Render(r.err))
	}
	return r.val
}

// ExpectErr is UnwrapErr with a caller-supplied context prefix.
func (r Result[T]) ExpectErr(msg string) error {
	if r.isOk {
		panic(msg + ": " + renderValue(r.val))
	}
	return r.err
}

func (r Result[T]) UnwrapOr(def T) T {
	if r.isOk {
		return r.val
	}
	return def
}

func (r Result[T]) UnwrapOrElse(f func(err error) T) T {
	if r.isOk {
		return r.val
	}
	return f(r.err)
}

// Or returns r if it succeeded, otherwise other. On a double failure the
// right operand wins.
func (r Result[T]) Or(other Result[T]) Result[T] {
	if r.isOk {
		return r
	}
	return other
}

// OrElse returns r if it succeeded, otherwise the result of f applied to
// the error.
func (r Result[T]) OrElse(f func(err error) Result[T]) Result[T] {
	if r.isOk {
		return r
	}
	return f(r.err)
}

// MapErr transforms the error channel; Ok passes through unchanged.
func (r Result[T]) MapErr(f func(err error) error) Result[T] {
	if r.isOk {
		return r
	}
	r.err = f(r.err)
	return r
}

// Tee runs a side effect on the success value without changing the result.
func (r Result[T]) Tee(f func(v T)) Result[T] {
	if r.isOk {
		f(r.val)
	}
	return r
}

// TeeErr runs a side effect on the error without changing the result.
func (r Result[T]) TeeErr(f func(err error)) Result[T] {
	if !r.isOk {
		f(r.err)
	}
	return r
}

// ToSlice returns a one-element slice holding the success value, or an
// empty slice on Err.
func (r Result[T]) ToSlice() []T {
	if !r.isOk {
		return nil
	}
	return []T{r.val}
}

// ToErrSlice returns the carried errors: empty on Ok, the joined errors
// split apart otherwise.
func (r Result[T]) ToErrSlice() []error {
	if r.isOk {
		return nil
	}
	return Errors(r.err)
}
