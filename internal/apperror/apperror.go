// Package apperror defines the application error taxonomy and its mapping to
// HTTP status codes, so handlers can translate service failures uniformly.
package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	// Internal is an unexpected server-side failure.
	Internal Kind = iota
	// Database is a persistence failure the client did not cause.
	Database
	// Validation is a malformed or out-of-range client input.
	Validation
	// Auth is an authentication failure (missing/invalid credentials or token).
	Auth
	// Forbidden is an authorization failure (authenticated, but not the owner).
	Forbidden
	// NotFound means the requested resource does not exist.
	NotFound
	// Conflict means a uniqueness constraint was violated.
	Conflict
)

// Error is the application error type. Message is safe to show to clients;
// Err carries the underlying cause for server-side logs only.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode maps the error kind to an HTTP status code.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case Validation:
		return http.StatusBadRequest
	case Auth:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Response is the JSON body sent to clients for any failed request.
type Response struct {
	Error string `json:"error"`
}

// ToResponse returns the client-facing representation of the error. Only the
// message crosses the boundary, never the wrapped cause.
func (e *Error) ToResponse() Response {
	return Response{Error: e.Message}
}

func newError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// NewInternal creates an Internal error.
func NewInternal(message string, err error) *Error {
	return newError(Internal, message, err)
}

// NewDatabase creates a Database error.
func NewDatabase(message string, err error) *Error {
	return newError(Database, message, err)
}

// NewValidation creates a Validation error.
func NewValidation(message string) *Error {
	return newError(Validation, message, nil)
}

// NewAuth creates an Auth error.
func NewAuth(message string, err error) *Error {
	return newError(Auth, message, err)
}

// NewForbidden creates a Forbidden error.
func NewForbidden(message string) *Error {
	return newError(Forbidden, message, nil)
}

// NewNotFound creates a NotFound error.
func NewNotFound(message string) *Error {
	return newError(NotFound, message, nil)
}

// NewConflict creates a Conflict error.
func NewConflict(message string, err error) *Error {
	return newError(Conflict, message, err)
}

// FromError extracts an *Error from anywhere in err's chain.
func FromError(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsKind reports whether err carries an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	appErr, ok := FromError(err)
	return ok && appErr.Kind == kind
}
