package outcome

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestOk_ZeroValuePayload(t *testing.T) {
	t.Parallel()
	r := Ok("")
	if !r.IsOk() || r.IsErr() {
		t.Fatalf("Ok of a zero value must still be a success, got: ok=%v", r.IsOk())
	}
	if r.Err() != nil {
		t.Fatalf("expected nil error on Ok, got: %v", r.Err())
	}
}

func TestErr_Accessors(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	r := Err[int](err)
	if r.IsOk() || !r.IsErr() {
		t.Fatalf("expected failure, got: ok=%v", r.IsOk())
	}
	if r.Err() != err {
		t.Fatalf("expected the exact error value, got: %v", r.Err())
	}
	if v := r.Value(); v != 0 {
		t.Fatalf("expected zero payload on Err, got: %v", v)
	}
}

func TestOf(t *testing.T) {
	t.Parallel()
	if r := Of(5, nil); !r.IsOk() || r.Value() != 5 {
		t.Fatalf("expected Ok(5), got: ok=%v, val=%v", r.IsOk(), r.Value())
	}
	err := errors.New("nope")
	if r := Of(0, err); !r.IsErr() || r.Err() != err {
		t.Fatalf("expected Err(nope), got: ok=%v, err=%v", r.IsOk(), r.Err())
	}
}

func TestStamps(t *testing.T) {
	t.Parallel()
	r := Ok(1)
	if r.Id() == uuid.Nil || r.CreatedAt().IsZero() {
		t.Fatalf("expected id and creation time stamps")
	}
	e := Err[int](errors.New("x"))
	prop := ErrFrom[int, string](e)
	if prop.Id() != e.Id() || !prop.CreatedAt().Equal(e.CreatedAt()) {
		t.Fatalf("error propagation must preserve the originating stamps")
	}
}

func recoverMessage(t *testing.T, fn func()) (msg string) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			msg = fmt.Sprint(r)
		}
	}()
	fn()
	return msg
}

func TestUnwrap_FaultMessageVerbatimText(t *testing.T) {
	t.Parallel()
	msg := recoverMessage(t, func() {
		ErrValue[int]("oops").Unwrap()
	})
	if msg != "oops" {
		t.Fatalf("expected verbatim fault message %q, got: %q", "oops", msg)
	}
}

func TestUnwrap_FaultMessageStructuredJSON(t *testing.T) {
	t.Parallel()
	msg := recoverMessage(t, func() {
		ErrValue[int](map[string]int{"a": 1}).Unwrap()
	})
	if !strings.Contains(msg, "\"a\": 1") {
		t.Fatalf("expected indented JSON rendering of the value, got: %q", msg)
	}
}

func TestUnwrap_Success(t *testing.T) {
	t.Parallel()
	if v := Ok(7).Unwrap(); v != 7 {
		t.Fatalf("expected 7, got: %v", v)
	}
}

func TestUnwrapErr(t *testing.T) {
	t.Parallel()
	err := errors.New("bad")
	if got := Err[int](err).UnwrapErr(); got != err {
		t.Fatalf("expected the exact error value, got: %v", got)
	}
	msg := recoverMessage(t, func() {
		Ok(41).UnwrapErr()
	})
	if msg == "" {
		t.Fatalf("UnwrapErr on Ok must fault")
	}
}

func TestExpect_PrefixesMessage(t *testing.T) {
	t.Parallel()
	msg := recoverMessage(t, func() {
		ErrValue[int]("oops").Expect("loading config")
	})
	if msg != "loading config: oops" {
		t.Fatalf("expected prefixed fault message, got: %q", msg)
	}
}

func TestExpectErr_PrefixesMessage(t *testing.T) {
	t.Parallel()
	msg := recoverMessage(t, func() {
		Ok("fine").ExpectErr("should have failed")
	})
	if !strings.HasPrefix(msg, "should have failed: ") {
		t.Fatalf("expected prefixed fault message, got: %q", msg)
	}
}

func TestUnwrapOr(t *testing.T) {
	t.Parallel()
	if v := Err[int](errors.New("x")).UnwrapOr(9); v != 9 {
		t.Fatalf("expected default 9, got: %v", v)
	}
	if v := Ok(3).UnwrapOr(9); v != 3 {
		t.Fatalf("expected 3, got: %v", v)
	}
}

func TestUnwrapOrElse(t *testing.T) {
	t.Parallel()
	v := Err[int](errors.New("5")).UnwrapOrElse(func(err error) int {
		return len(err.Error())
	})
	if v != 1 {
		t.Fatalf("expected computed fallback 1, got: %v", v)
	}
}

func TestOr_RightWinsOnDoubleFailure(t *testing.T) {
	t.Parallel()
	a := ErrValue[int]("a")
	b := ErrValue[int]("b")
	out := a.Or(b)
	if out.Err().Error() != "b" {
		t.Fatalf("expected right operand's failure, got: %v", out.Err())
	}
}

func TestOrElse(t *testing.T) {
	t.Parallel()
	called := false
	out := Ok(1).OrElse(func(err error) Result[int] {
		called = true
		return Ok(2)
	})
	if called || out.Value() != 1 {
		t.Fatalf("OrElse must not run on Ok, got: called=%v, val=%v", called, out.Value())
	}

	out = ErrValue[int]("x").OrElse(func(err error) Result[int] {
		return Ok(2)
	})
	if !out.IsOk() || out.Value() != 2 {
		t.Fatalf("expected recovery to Ok(2), got: ok=%v, val=%v", out.IsOk(), out.Value())
	}
}

func TestMapErr(t *testing.T) {
	t.Parallel()
	out := ErrValue[int]("x").MapErr(func(err error) error {
		return fmt.Errorf("wrapped: %w", err)
	})
	if out.Err().Error() != "wrapped: x" {
		t.Fatalf("expected wrapped error, got: %v", out.Err())
	}
	ok := Ok(1).MapErr(func(err error) error { return errors.New("never") })
	if !ok.IsOk() {
		t.Fatalf("MapErr must pass Ok through unchanged")
	}
}

func TestTrace(t *testing.T) {
	t.Parallel()
	r := ErrValue[int]("x")
	if r.Stack() != "" {
		t.Fatalf("stack must only be captured by Trace")
	}
	traced := r.Trace()
	if traced.Stack() == "" || !strings.Contains(traced.Stack(), "goroutine") {
		t.Fatalf("expected a captured stack, got: %q", traced.Stack())
	}
	if again := traced.Trace(); again.Stack() != traced.Stack() {
		t.Fatalf("re-tracing must not replace the captured stack")
	}
	if ok := Ok(1).Trace(); ok.Stack() != "" {
		t.Fatalf("Trace must be a no-op on Ok")
	}
}

func TestTeeAndTeeErr(t *testing.T) {
	t.Parallel()
	var seen []string
	Ok("v").Tee(func(v string) { seen = append(seen, "ok:"+v) }).
		TeeErr(func(err error) { seen = append(seen, "err") })
	ErrValue[string]("e").Tee(func(v string) { seen = append(seen, "ok") }).
		TeeErr(func(err error) { seen = append(seen, "err:"+err.Error()) })
	if len(seen) != 2 || seen[0] != "ok:v" || seen[1] != "err:e" {
		t.Fatalf("unexpected side effect trace: %v", seen)
	}
}

func TestToSlice(t *testing.T) {
	t.Parallel()
	if s := Ok(1).ToSlice(); len(s) != 1 || s[0] != 1 {
		t.Fatalf("expected [1], got: %v", s)
	}
	if s := ErrValue[int]("x").ToSlice(); len(s) != 0 {
		t.Fatalf("expected empty slice, got: %v", s)
	}
}

func TestToErrSlice_SplitsJoinedErrors(t *testing.T) {
	t.Parallel()
	e1 := errors.New("one")
	e2 := errors.New("two")
	errs := Err[int](errors.Join(e1, e2)).ToErrSlice()
	if len(errs) != 2 || errs[0] != e1 || errs[1] != e2 {
		t.Fatalf("expected both joined errors, got: %v", errs)
	}
	if errs := Ok(1).ToErrSlice(); len(errs) != 0 {
		t.Fatalf("expected no errors on Ok, got: %v", errs)
	}
}
