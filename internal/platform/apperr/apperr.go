// Copyright (c) 2026 Caboomlog. All rights reserved.

/*
Package apperr defines the error type shared by every layer of the caboomlog backend.

Domain packages declare their failures as [*AppError] sentinels (see [New]) so callers can
match them with [errors.Is], while the transport layer reads the HTTP status and the
machine-readable code straight off the value.

Architecture:

  - AppError: machine-readable Code, client-safe Message, HTTP status, hidden Cause.
  - Constructors: one per HTTP error class (4xx/5xx), plus [New] for domain-specific codes.
  - Mapping: [respond.Error] is the only place an AppError becomes a response body.
*/
package apperr

import (
	"errors"
	"net/http"
)

// AppError is the canonical error type of the API.
//
// # Security
//
// Cause is for server-side logging only. It is never serialized, so storage details
// (SQL text, driver messages) cannot leak to clients.
type AppError struct {
	// Code is a machine-readable identifier (e.g. "CATEGORY_NOT_FOUND").
	Code string `json:"code"`
	// Message is a human-readable description safe to return to the client.
	Message string `json:"error"`
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
	// Details holds per-field validation errors for VALIDATION_ERROR responses.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// New creates an [AppError] with a domain-specific code.
//
// Example:
//
//	var ErrMaxDepthExceeded = apperr.New("MAX_DEPTH_EXCEEDED", "Category depth limit reached", http.StatusBadRequest)
func New(code, message string, status int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: status,
	}
}

// # Client Errors (4xx)

// NotFound creates a 404 [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Blog") // "Blog not found"
func NotFound(resource string) *AppError {
	return New("NOT_FOUND", resource+" not found", http.StatusNotFound)
}

// BadRequest creates a generic 400 [AppError].
func BadRequest(msg string) *AppError {
	return New("BAD_REQUEST", msg, http.StatusBadRequest)
}

// Unauthorized creates a 401 [AppError].
func Unauthorized(msg string) *AppError {
	return New("UNAUTHORIZED", msg, http.StatusUnauthorized)
}

// Forbidden creates a 403 [AppError].
func Forbidden(msg string) *AppError {
	return New("FORBIDDEN", msg, http.StatusForbidden)
}

// ValidationError creates a 400 [AppError] with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// RateLimited creates a 429 [AppError].
func RateLimited() *AppError {
	return New("RATE_LIMITED", "Rate limit exceeded", http.StatusTooManyRequests)
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}
