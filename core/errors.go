package core

import "github.com/pkg/errors"

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// ConnectivityError wraps a failure to reach the remote spreadsheet store.
// It is caught at the call boundary and surfaced as a generic user-visible
// message; the underlying fault is never propagated raw.
type ConnectivityError struct {
	Err error
}

func NewConnectivityError(err error, msg string) error {
	return &ConnectivityError{Err: errors.Wrap(err, msg)}
}

func (err ConnectivityError) Error() string {
	return "the remote store could not be reached, please try again later"
}

func (err ConnectivityError) Unwrap() error { return err.Err }

func IsConnectivityError(err error) bool {
	var cerr *ConnectivityError
	return errors.As(err, &cerr)
}

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
