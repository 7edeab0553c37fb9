// Package apperr defines the typed error taxonomy shared by the pipeline
// engine and the public listing gateway. Handlers translate kinds into HTTP
// statuses; the core never swallows an error or substitutes defaults.
package apperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindNotFound             Kind = "not_found"
	KindInvalidStage         Kind = "invalid_stage"
	KindInvalidState         Kind = "invalid_state"
	KindSlugAllocationFailed Kind = "slug_allocation_failed"
	KindTimeout              Kind = "timeout"
	KindConflict             Kind = "conflict"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// NotFound reports an absent entity. Public read paths also use it for jobs
// that exist but are not public, so existence is never leaked.
func NotFound(entity string) *Error {
	return Newf(KindNotFound, "%s not found", entity)
}

// KindOf extracts the Kind from err, or "" if err carries none.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool { return KindOf(err) == kind }
