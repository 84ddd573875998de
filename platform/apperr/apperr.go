// Package apperr provides standardized domain error types for the application.
// Domain services return these typed errors, and the HTTP layer maps them to
// status codes through HTTPStatus.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind represents the category of error.
type Kind int

const (
	// KindUnknown is the default error kind when none is specified.
	KindUnknown Kind = iota
	// KindNotFound indicates a resource was not found.
	KindNotFound
	// KindValidation indicates invalid input data.
	KindValidation
	// KindBadRequest indicates a malformed request.
	KindBadRequest
	// KindUnauthorized indicates a missing or invalid view token.
	KindUnauthorized
	// KindFormatMismatch indicates the raw ID matched no known ID format.
	KindFormatMismatch
	// KindLookupFailure indicates the country metadata service failed or
	// answered with a non-success status.
	KindLookupFailure
	// KindStale indicates the result was superseded by a newer lookup on the
	// same view.
	KindStale
	// KindInternal indicates an unexpected internal error.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindFormatMismatch:
		return "format_mismatch"
	case KindLookupFailure:
		return "lookup_failure"
	case KindStale:
		return "stale"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error is a domain error with a typed Kind for HTTP mapping.
type Error struct {
	Kind    Kind
	Message string
	Op      string      // Operation that failed (optional)
	Err     error       // Underlying error (optional)
	Details interface{} // Additional details for response (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Op != "" {
		msg = fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the appropriate HTTP status code for this error kind.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation, KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindFormatMismatch:
		return http.StatusUnprocessableEntity
	case KindLookupFailure:
		return http.StatusBadGateway
	case KindStale:
		return http.StatusConflict
	case KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// New creates a new domain error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// WithOp sets the operation on the error and returns it.
func (e *Error) WithOp(op string) *Error {
	e.Op = op
	return e
}

// WithDetails sets response details on the error and returns it.
func (e *Error) WithDetails(details interface{}) *Error {
	e.Details = details
	return e
}

// NotFound creates a not found error.
func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// Validation creates a validation error.
func Validation(message string) *Error {
	return New(KindValidation, message)
}

// BadRequest creates a bad request error.
func BadRequest(message string) *Error {
	return New(KindBadRequest, message)
}

// Unauthorized creates an unauthorized error.
func Unauthorized(message string) *Error {
	return New(KindUnauthorized, message)
}

// FormatMismatch creates the error returned when no ID format matched.
func FormatMismatch(message string) *Error {
	return New(KindFormatMismatch, message)
}

// LookupFailure wraps a failed country metadata lookup.
func LookupFailure(message string, err error) *Error {
	return Wrap(KindLookupFailure, message, err)
}

// Stale creates the error returned for superseded lookups.
func Stale(message string) *Error {
	return New(KindStale, message)
}

// Internal creates an internal server error.
func Internal(message string) *Error {
	return New(KindInternal, message)
}

// GetKind extracts the error kind from anywhere in err's chain.
// Returns KindUnknown if no *Error is found.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is checks if err carries an *Error with the given kind.
func Is(err error, kind Kind) bool {
	return GetKind(err) == kind
}
