// Package common defines the error taxonomy and shared constants used across
// the blog directory server and client. Callers should use errors.Is or
// KindOf to match failures instead of comparing messages.
package common

import (
	"errors"
	"fmt"
)

// Kind classifies a failure. The set is closed: the HTTP layer maps every
// Kind to exactly one status code.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindInvalidID
	KindUnauthenticated
	KindTokenInvalid
	KindTokenExpired
	KindForbidden
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindInvalidID:
		return "invalid id"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindTokenInvalid:
		return "token invalid"
	case KindTokenExpired:
		return "token expired"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not found"
	default:
		return "internal"
	}
}

// Error is a classified failure. Message is safe to show to API callers;
// Err carries the underlying cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same Kind, so that
// errors.Is(err, common.ErrorNotFound) matches any not-found failure
// regardless of its message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// NewError builds a classified error with a caller-facing message.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError classifies cause under kind.
func WrapError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// KindOf returns the Kind of the first *Error in err's chain, or
// KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf returns the caller-facing message of a classified error.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindInternal {
		return e.Message
	}
	return "internal server error"
}

var (
	// Repository-level errors.
	ErrorNotFound = NewError(KindNotFound, "not found")
	ErrorConflict = NewError(KindConflict, "already exists")

	// Service-level errors.
	ErrorInternal        = NewError(KindInternal, "internal error")
	ErrorUnauthenticated = NewError(KindUnauthenticated, "unauthenticated")
	ErrorForbidden       = NewError(KindForbidden, "forbidden")
	ErrorValidation      = NewError(KindValidation, "validation error")
	ErrorInvalidID       = NewError(KindInvalidID, "malformatted id")

	// Token errors.
	ErrTokenInvalid = NewError(KindTokenInvalid, "invalid token")
	ErrTokenExpired = NewError(KindTokenExpired, "token expired")
)
