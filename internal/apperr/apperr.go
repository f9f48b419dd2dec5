// Package apperr defines the error taxonomy surfaced by the engine.
// Every error carries a Kind so transports can map it to a status code
// and a message detailed enough to render to the user.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindValidation Kind = iota + 1 // malformed or missing input
	KindNotFound                   // referenced entity absent
	KindConflict                   // duplicate booking/feedback/slot
	KindForbidden                  // actor lacks rights over the resource
	KindInvalidState               // operation not valid for entity state
	KindStorage                    // persistence layer failed to save
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindForbidden:
		return "forbidden"
	case KindInvalidState:
		return "invalid_state"
	case KindStorage:
		return "storage"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind Kind
	Msg  string
	Err  error // wrapped cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}

func Forbidden(format string, args ...any) *Error {
	return &Error{Kind: KindForbidden, Msg: fmt.Sprintf(format, args...)}
}

func InvalidState(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidState, Msg: fmt.Sprintf(format, args...)}
}

// Storage wraps a persistence failure so multi-step operations can halt
// and report which write failed
func Storage(err error, format string, args ...any) *Error {
	return &Error{Kind: KindStorage, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the Kind from an error chain, 0 if none
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsKind checks whether the error chain carries the given kind
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
