package outcome

import (
	"errors"
	"testing"
)

func TestIsNil(t *testing.T) {
	t.Parallel()
	if !IsNil(nil) {
		t.Fatalf("nil must be nil")
	}
	var p *int
	if !IsNil(p) {
		t.Fatalf("a typed nil pointer boxed in an interface must be nil")
	}
	v := 1
	if IsNil(&v) {
		t.Fatalf("a non-nil pointer is not nil")
	}
}

func TestErrors(t *testing.T) {
	t.Parallel()
	if errs := Errors(nil); len(errs) != 0 {
		t.Fatalf("expected no errors from nil, got: %v", errs)
	}
	plain := errors.New("one")
	if errs := Errors(plain); len(errs) != 1 || errs[0] != plain {
		t.Fatalf("expected the single error back, got: %v", errs)
	}
	joined := errors.Join(errors.New("a"), errors.New("b"))
	if errs := Errors(joined); len(errs) != 2 {
		t.Fatalf("expected the joined errors split apart, got: %v", errs)
	}
}
