package outcome

import "time"

type ValueProvider[T any] interface {
	// Value returns the successful payload
	Value() T
	// CreatedAt time of creation (UTC)
	CreatedAt() time.Time
}

// Fallible defines an interface for types that can return a value or an error
type Fallible[T any] interface {
	ValueProvider[T]
	// Err returns the error if the operation failed
	Err() error
	// IsOk returns true if the operation was successful
	IsOk() bool
}

var _ Fallible[int] = Result[int]{}
