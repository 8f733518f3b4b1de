package errors

import (
	stderrors "errors"
	"fmt"
)

type Code int

const (
	Parse Code = iota + 1
	State
	IO
	Validation
)

func (c Code) String() string {
	switch c {
	case Parse:
		return "parse"
	case State:
		return "state"
	case IO:
		return "io"
	case Validation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is a coded pipeline error. Code classifies the failure,
// Err carries the underlying cause when there is one.
type Error struct {
	Code Code
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s error: %s: %v", e.Code, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s error: %s", e.Code, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a coded error with a formatted message.
func New(code Code, msg string, args ...any) error {
	return &Error{
		Code: code,
		Msg:  fmt.Sprintf(msg, args...),
	}
}

// Wrap attaches a code and context message to an existing error.
// A nil err returns nil so call sites can wrap unconditionally.
func Wrap(err error, code Code, msg string, args ...any) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code: code,
		Msg:  fmt.Sprintf(msg, args...),
		Err:  err,
	}
}

// CodeOf extracts the code from err or any error it wraps.
// Uncoded errors report code 0.
func CodeOf(err error) Code {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return 0
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return CodeOf(err) == code
}
