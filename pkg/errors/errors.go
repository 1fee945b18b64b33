package chatter_errors

import (
	"errors"
	"net/http"
)

// Common errors
var (
	ErrValidation    = errors.New("validation failed")
	ErrAuthorization = errors.New("authorization failed")
	ErrNotFound      = errors.New("not found")
)

// Error is a request failure that maps directly onto an HTTP status.
type Error struct {
	Status  int
	Message string
	kind    error
}

func (e *Error) Error() string {
	return e.Message
}

// Is makes errors.Is(err, ErrValidation) and friends work on *Error values.
func (e *Error) Is(target error) bool {
	return e.kind != nil && target == e.kind
}

// Validation reports missing or invalid input (400).
func Validation(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message, kind: ErrValidation}
}

// Authorization reports a failed membership check (401).
func Authorization(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message, kind: ErrAuthorization}
}

// StatusOf returns the HTTP status and client-facing message for err.
// Anything that is not an *Error is an internal failure.
func StatusOf(err error) (int, string) {
	var e *Error
	if errors.As(err, &e) {
		return e.Status, e.Message
	}
	return http.StatusInternalServerError, "internal server error"
}
