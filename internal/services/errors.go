package services

import (
	"errors"
	"fmt"
)

// Failure kinds. Errors returned by services match one of them through
// errors.Is; anything else is an unclassified internal fault.
var (
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrAuthorizationDenied    = errors.New("authorization denied")
	ErrNotFound               = errors.New("not found")
	ErrValidationFailed       = errors.New("validation failed")
	ErrDuplicateEmail         = errors.New("duplicate email")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrStorageFailure         = errors.New("storage failure")
)

// Error is a failure of a specific kind with a message fit for API consumers.
type Error struct {
	Kind    error  // one of the Err* kinds above
	Message string // human readable, safe to expose
	Cause   error  // underlying error, if any; never exposed
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Is matches the kind of the error.
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func storageFailure(err error) error {
	return &Error{Kind: ErrStorageFailure, Message: "Storage failure.", Cause: err}
}

// passThrough keeps errors that already carry a kind and reports any other
// error as a storage failure.
func passThrough(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return storageFailure(err)
}
