package apperr

import (
	"errors"
	"net/http"
)

// Kind tags an application error with its domain meaning. The HTTP status
// is derived from the kind once, at construction time, so handlers never
// pick status codes themselves.
type Kind string

const (
	KindValidation         Kind = "validation"
	KindNotFound           Kind = "not_found"
	KindConflict           Kind = "conflict"
	KindInvalidCredentials Kind = "invalid_credentials"
	KindInvalidCode        Kind = "invalid_code"
	KindForbidden          Kind = "forbidden"
	KindInternal           Kind = "internal"
)

// Error is the single error variant used across services and repositories.
// Details carries field-level validation messages when Kind is validation.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Details map[string][]string
}

func (e *Error) Error() string { return e.Message }

func New(kind Kind, status int, message string) *Error {
	return &Error{Kind: kind, Status: status, Message: message}
}

func Validation(message string, details map[string][]string) *Error {
	return &Error{Kind: KindValidation, Status: http.StatusBadRequest, Message: message, Details: details}
}

func NotFound(message string) *Error {
	return New(KindNotFound, http.StatusNotFound, message)
}

func Conflict(message string) *Error {
	return New(KindConflict, http.StatusConflict, message)
}

// InvalidCredentials is deliberately message-fixed: unknown email and wrong
// password must be indistinguishable to the caller.
func InvalidCredentials() *Error {
	return New(KindInvalidCredentials, http.StatusUnauthorized, "invalid credentials")
}

func InvalidCode(message string) *Error {
	return New(KindInvalidCode, http.StatusBadRequest, message)
}

func Forbidden(message string) *Error {
	return New(KindForbidden, http.StatusForbidden, message)
}

func Internal(message string) *Error {
	return New(KindInternal, http.StatusInternalServerError, message)
}

// From extracts an *Error from err, or nil when err is not an application
// error.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// IsKind reports whether err is an application error of the given kind.
func IsKind(err error, kind Kind) bool {
	ae := From(err)
	return ae != nil && ae.Kind == kind
}
