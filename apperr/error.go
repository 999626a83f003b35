// Package apperr provides the site's error taxonomy: a structured error
// type, a deterministic severity/category classifier, report construction
// and a handler that logs and forwards reports.
//
// Classification is for display and logging only. Nothing in this package
// retries or recovers; every recovery is user initiated.
package apperr

import (
	"errors"
	"fmt"
	"time"
)

// Code is a machine-readable error code.
type Code string

const (
	CodeNetwork        Code = "NETWORK_ERROR"
	CodeValidation     Code = "VALIDATION_ERROR"
	CodeAuthentication Code = "AUTHENTICATION_ERROR"
	CodeAuthorization  Code = "AUTHORIZATION_ERROR"
	CodeNotFound       Code = "NOT_FOUND_ERROR"
	CodeServer         Code = "SERVER_ERROR"
)

// Error is an application error with optional code and HTTP-like status.
type Error struct {
	Code       Code      // empty when unknown
	StatusCode int       // zero when unknown
	Message    string    // internal message for logs
	Cause      error     // wrapped underlying error
	Timestamp  time.Time // when the error was created
	Network    bool      // set by NetworkError
}

// Option configures an [Error] built by [New].
type Option func(*Error)

// WithCode sets the machine-readable code.
func WithCode(c Code) Option {
	return func(e *Error) { e.Code = c }
}

// WithStatus sets the HTTP-like status code.
func WithStatus(status int) Option {
	return func(e *Error) { e.StatusCode = status }
}

// WithCause records the underlying error.
func WithCause(err error) Option {
	return func(e *Error) { e.Cause = err }
}

// now is replaced in tests.
var now = time.Now

// New creates an application error stamped with the current time.
func New(message string, opts ...Option) *Error {
	e := &Error{Message: message, Timestamp: now()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NetworkError creates an error for a failed outbound call.
func NetworkError(message string, status int) *Error {
	e := New(message, WithCode(CodeNetwork), WithStatus(status))
	e.Network = true
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same non-empty code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code != "" && e.Code == t.Code
}

// Wrap converts any error into an *Error.
//
// If err already contains an *Error, that value is returned. Anything else
// becomes an error without code or status, keeping err as its cause. Wrap
// returns nil for a nil error.
func Wrap(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return New(err.Error(), WithCause(err))
}

// FromPanic converts a recovered panic value into an *Error.
func FromPanic(v any) *Error {
	switch p := v.(type) {
	case *Error:
		return p
	case error:
		return Wrap(p)
	default:
		return New(fmt.Sprintf("panic: %v", p))
	}
}

// IsNetwork reports whether err contains an error built by [NetworkError].
func IsNetwork(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Network
}
