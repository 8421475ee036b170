package contest

import (
	"errors"
	"fmt"
)

// Kind classifies contest errors for callers that branch on them.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindUnauthorized
	KindSubmissionsClosed
	KindValidationFailed
	KindStoreUnavailable
	KindWriteNotConfirmed
)

var kindNames = map[Kind]string{
	KindUnknown:           "unknown",
	KindUnauthorized:      "unauthorized",
	KindSubmissionsClosed: "submissions_closed",
	KindValidationFailed:  "validation_failed",
	KindStoreUnavailable:  "store_unavailable",
	KindWriteNotConfirmed: "write_not_confirmed",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return kindNames[KindUnknown]
}

// Error is returned by every Service operation. Message is safe to show to
// users; Cause carries the underlying store error for logs.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches any *Error of the same Kind, so errors.Is works against the
// sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrUnauthorized      = &Error{Kind: KindUnauthorized, Message: "incorrect password"}
	ErrSubmissionsClosed = &Error{Kind: KindSubmissionsClosed, Message: "tips are closed at the moment"}
	ErrValidationFailed  = &Error{Kind: KindValidationFailed, Message: "invalid tip"}
	ErrStoreUnavailable  = &Error{Kind: KindStoreUnavailable, Message: "could not reach the database"}
	ErrWriteNotConfirmed = &Error{Kind: KindWriteNotConfirmed, Message: "the change was not saved to the database"}
)

const msgTipNotSaved = "could not reach the database, your tip was not saved"

func invalid(msg string) *Error {
	return &Error{Kind: KindValidationFailed, Message: msg}
}

func unavailable(cause error) *Error {
	return &Error{Kind: KindStoreUnavailable, Message: ErrStoreUnavailable.Message, Cause: cause}
}

// KindOf returns the Kind of err, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
