package task

import (
	"context"

	"github.com/outcome-go/outcome/pkg/outcome"
)

// Promise is a hot deferred plain value: the producing function starts
// immediately and its value is memoized behind a latch closed exactly
// once. A fault (panic) in the producer surfaces as the await error.
type Promise[T any] struct {
	s *promiseState[T]
}

type promiseState[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// NewPromise starts fn on its own goroutine and returns the promise of
// its value.
func NewPromise[T any](fn func() T) *Promise[T] {
	p := &Promise[T]{s: &promiseState[T]{done: make(chan struct{})}}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				p.s.err = outcome.AsError(r)
			}
			close(p.s.done)
		}()
		p.s.val = fn()
	}()
	return p
}

// Resolved returns an already-settled promise.
func Resolved[T any](v T) *Promise[T] {
	s := &promiseState[T]{done: make(chan struct{}), val: v}
	close(s.done)
	return &Promise[T]{s: s}
}

// Await blocks until the promise settles or ctx expires. Context expiry
// abandons the wait, not the producing computation.
func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.s.done:
		return p.s.val, p.s.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func (p *Promise[T]) wait() (T, error) {
	<-p.s.done
	return p.s.val, p.s.err
}

// Done is closed once the promise has settled.
func (p *Promise[T]) Done() <-chan struct{} {
	return p.s.done
}
