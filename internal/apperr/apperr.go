// Package apperr provides the structured error type used across the service.
// Every expected failure is an *Error carrying a stable integer code, a
// human-readable message and the HTTP status it maps to. Errors are always
// returned, never panicked, and never include secret material.
package apperr

import (
	"fmt"
	"net/http"
)

// Error is the unified application error type.
type Error struct {
	// Code is the stable machine-readable error code.
	Code Code `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// HTTPStatus is the HTTP status code this error maps to.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error, kept for logs only.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%d] %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new Error.
func New(code Code, message string, httpStatus int) *Error {
	return &Error{Code: code, Message: message, HTTPStatus: httpStatus}
}

// --- Constructors, one per taxonomy entry ---

// MissingField reports a missing required request field.
func MissingField(field string) *Error {
	return &Error{
		Code: CodeMissingField, Message: fmt.Sprintf("%s required", field),
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"field": field},
	}
}

// InvalidInput reports a present but unusable field value.
func InvalidInput(reason string) *Error {
	return New(CodeInvalidInput, reason, http.StatusBadRequest)
}

// DuplicateUser reports an already-taken username.
func DuplicateUser(username string) *Error {
	return &Error{
		Code: CodeDuplicateUser, Message: "username already exists",
		HTTPStatus: http.StatusConflict,
		Details:    map[string]any{"username": username},
	}
}

// InvalidCredentials reports a failed login. The message deliberately does not
// say whether the user exists.
func InvalidCredentials() *Error {
	return New(CodeInvalidCredentials, "invalid credentials", http.StatusUnauthorized)
}

// MissingToken reports an absent bearer header or refresh token.
func MissingToken() *Error {
	return New(CodeMissingToken, "missing bearer token", http.StatusUnauthorized)
}

// InvalidToken reports a token that failed decoding or has the wrong type.
// Malformed, tampered, expired and wrong-type all collapse into this one code.
func InvalidToken() *Error {
	return New(CodeInvalidToken, "invalid or expired token", http.StatusUnauthorized)
}

// RevokedToken reports a refresh token with no live revocation entry.
func RevokedToken() *Error {
	return New(CodeRevokedToken, "token has been revoked", http.StatusUnauthorized)
}

// InsufficientRole reports a principal lacking the required role.
func InsufficientRole(required string) *Error {
	return &Error{
		Code: CodeInsufficientRole, Message: "insufficient role",
		HTTPStatus: http.StatusForbidden,
		Details:    map[string]any{"required_role": required},
	}
}

// StoreUnavailable reports a persistence failure in one of the backing stores.
func StoreUnavailable(store string, cause error) *Error {
	return &Error{
		Code: CodeStoreUnavailable, Message: fmt.Sprintf("%s store unavailable", store),
		HTTPStatus: http.StatusServiceUnavailable,
		Details:    map[string]any{"store": store},
		Cause:      cause,
	}
}

// Internal reports an unexpected error without leaking its cause to clients.
func Internal(cause error) *Error {
	return &Error{
		Code: CodeInternal, Message: "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}
