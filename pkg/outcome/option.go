package outcome

// Option holds exactly one of a present value or nothing. Absence is not
// an error; lift an Option into a Result when it should become one.
type Option[T any] struct {
	val    T
	isSome bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{val: v, isSome: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr adapts a possibly-nil pointer: nil becomes None.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool {
	return o.isSome
}

func (o Option[T]) IsNone() bool {
	return !o.isSome
}

// Get unpacks the option into a (value, present) pair.
func (o Option[T]) Get() (T, bool) {
	return o.val, o.isSome
}

// Unwrap returns the present value; panics on None.
func (o Option[T]) Unwrap() T {
	if !o.isSome {
		panic(Render(ErrNoValue))
	}
	return o.val
}

func (o Option[T]) UnwrapOr(def T) T {
	if o.isSome {
		return o.val
	}
	return def
}

// ToResult lifts the option into a result, failing with err on absence.
func (o Option[T]) ToResult(err error) Result[T] {
	if o.isSome {
		return Ok(o.val)
	}
	return Err[T](err)
}

// MapOption transforms the present value.
func MapOption[In, Out any](o Option[In], f func(In) Out) Option[Out] {
	if !o.isSome {
		return None[Out]()
	}
	return Some(f(o.val))
}

// ChainOption binds an option-returning function; None short-circuits.
func ChainOption[In, Out any](o Option[In], f func(In) Option[Out]) Option[Out] {
	if !o.isSome {
		return None[Out]()
	}
	return f(o.val)
}
