package errors

import "errors"

var Is = errors.Is

// Every failure the server can hit is an I/O failure of one of these kinds.
// None of them is recovered.
var (
	ErrBind   = errors.New("bind failed")
	ErrAccept = errors.New("accept failed")
	ErrWrite  = errors.New("write failed")
)

type baseErr struct {
	base  error
	inner error
}

func (e *baseErr) Unwrap() error {
	return e.inner
}

// Is matches only this error's own kind; kinds of nested Single errors are reached through Unwrap.
func (e *baseErr) Is(target error) bool {
	return e.base == target
}

func (e *baseErr) Error() string {
	if e.inner == nil {
		return e.base.Error()
	}
	return e.base.Error() + ": " + e.inner.Error()
}

// Single tags cause with the kind base.
func Single(base, cause error) error {
	return &baseErr{
		base:  base,
		inner: cause,
	}
}

func Cause(err error) error {
	if err == nil {
		return nil
	}
L:
	for {
		switch inner := err.(type) {
		case interface{ Unwrap() error }:
			if inner.Unwrap() == nil {
				break L
			}
			err = inner.Unwrap()
		default:
			break L
		}
	}
	return err
}
