// Package apperr provides standardized typed errors for the library.
// The client and service layers return these typed errors, and embedding
// applications can map them to appropriate HTTP status codes.
package apperr

import (
	"fmt"
	"net/http"
)

// Kind represents the category of error.
type Kind int

const (
	// KindUnknown is the default error kind when none is specified.
	KindUnknown Kind = iota
	// KindValidation indicates invalid input data, rejected before any network call.
	KindValidation
	// KindUnauthorized indicates the API rejected the credential.
	KindUnauthorized
	// KindBadRequest indicates the API reported the request parameters as invalid.
	KindBadRequest
	// KindRateLimited indicates the API rejected the request due to quota exhaustion.
	KindRateLimited
	// KindDecode indicates the API response body could not be decoded.
	KindDecode
	// KindTransport indicates a network-level failure (DNS, connect, timeout).
	KindTransport
	// KindUpstream indicates an unexpected status code from the API.
	KindUpstream
)

// Error is a typed error with a Kind for programmatic branching.
type Error struct {
	Kind    Kind
	Message string
	Op      string      // Operation that failed (optional)
	Err     error       // Underlying error (optional)
	Details interface{} // Additional details, e.g. quota counters (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the HTTP status code an embedding application should
// surface for this error kind.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation, KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindRateLimited:
		return http.StatusTooManyRequests
	case KindDecode, KindUpstream:
		return http.StatusBadGateway
	case KindTransport:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// New creates a new typed error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates a new typed error wrapping an existing error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// WithOp returns the error with the operation set.
func (e *Error) WithOp(op string) *Error {
	e.Op = op
	return e
}

// WithDetails returns the error with additional details.
func (e *Error) WithDetails(details interface{}) *Error {
	e.Details = details
	return e
}

// Convenience constructors for common error types.

// Validation creates a validation error.
func Validation(message string) *Error {
	return New(KindValidation, message)
}

// Unauthorized creates an unauthorized error.
func Unauthorized(message string) *Error {
	return New(KindUnauthorized, message)
}

// BadRequest creates a bad request error.
func BadRequest(message string) *Error {
	return New(KindBadRequest, message)
}

// RateLimited creates a rate limited error.
func RateLimited(message string) *Error {
	return New(KindRateLimited, message)
}

// Decode creates a decode error.
func Decode(message string) *Error {
	return New(KindDecode, message)
}

// Transport creates a transport error wrapping the network-level cause.
func Transport(message string, err error) *Error {
	return Wrap(KindTransport, message, err)
}

// Upstream creates an unexpected upstream status error.
func Upstream(message string) *Error {
	return New(KindUpstream, message)
}

// GetKind extracts the error kind from an error.
// Returns KindUnknown if the error is not an *Error.
func GetKind(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return KindUnknown
}

// Is checks if err is an *Error with the given kind.
func Is(err error, kind Kind) bool {
	return GetKind(err) == kind
}

// GetDetails extracts the details from an error.
// Returns nil if the error is not an *Error or carries no details.
func GetDetails(err error) interface{} {
	if e, ok := err.(*Error); ok {
		return e.Details
	}
	return nil
}
