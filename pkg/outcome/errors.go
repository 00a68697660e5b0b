package outcome

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoValue is the failure an absent Option lifts to inside a do block.
var ErrNoValue = errors.New("no value present")

// valueError carries a non-error value raised or rejected by adapted code.
// Its message is the value itself: verbatim for strings, indented JSON
// otherwise.
type valueError struct {
	v any
}

func (e *valueError) Error() string {
	if s, ok := e.v.(string); ok {
		return s
	}
	b, err := json.MarshalIndent(e.v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", e.v)
	}
	return string(b)
}

// Value returns the original value the error was adapted from.
func (e *valueError) Value() any {
	return e.v
}

// AsError adapts an arbitrary raised value into an error. Values that are
// already errors are preserved; everything else is wrapped so that its
// message renders the value (strings verbatim, other values as JSON).
func AsError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return &valueError{v: v}
}

// Render builds the user-visible text for an error: the message verbatim.
func Render(err error) string {
	if err == nil {
		return "<nil>"
	}
	return err.Error()
}

func renderValue(v any) string {
	return Render(AsError(v))
}
