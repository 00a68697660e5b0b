package outcome

import "errors"

// Exn tags an error with a caller-chosen kind discriminant so call sites
// can tell error origins apart without defining types per origin. The
// underlying error's message is retained verbatim.
type Exn struct {
	kind string
	err  error
}

func NewExn(kind string, err error) *Exn {
	return &Exn{kind: kind, err: err}
}

func (e *Exn) Kind() string {
	return e.kind
}

func (e *Exn) Error() string {
	return e.err.Error()
}

func (e *Exn) Unwrap() error {
	return e.err
}

// KindOf reports the kind of the first Exn in err's chain.
func KindOf(err error) (string, bool) {
	var e *Exn
	if errors.As(err, &e) {
		return e.kind, true
	}
	return "", false
}

// HasKind reports whether err's chain carries an Exn with the given kind.
func HasKind(err error, kind string) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
