// Package errors defines the application error type shared by the session,
// dialog, and API client layers.
//
// Backend failures are not converted into AppError. Instead, any error that
// reports an HTTP status (see StatusCoder) is classified by that status, so
// IsNotFound or IsValidation answer the same way for a local validation
// failure and for a 404 or 400 returned by the reservation backend.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	ErrCodeNotFound        ErrorCode = "not_found"
	ErrCodeConflict        ErrorCode = "conflict"
	ErrCodeValidation      ErrorCode = "validation"
	ErrCodeUnauthenticated ErrorCode = "unauthenticated"
	ErrCodeInternal        ErrorCode = "internal"
)

// AppError carries a code, a message, and optionally the failing field and the cause.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
	// Field names the offending input for validation errors.
	Field string
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates an AppError with the given code.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Conflict reports a request that collides with in-flight state, such as a pending dialog.
func Conflict(message string) *AppError { return New(ErrCodeConflict, message) }

// Validation reports invalid input that is not tied to one field.
func Validation(message string) *AppError { return New(ErrCodeValidation, message) }

// ValidationField reports invalid input for field.
func ValidationField(field, message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message, Field: field}
}

// Unauthenticated reports an operation that needs a logged-in identity.
func Unauthenticated(message string) *AppError { return New(ErrCodeUnauthenticated, message) }

// Wrap wraps err with an AppError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// StatusCoder is implemented by transport errors that carry an HTTP status.
type StatusCoder interface {
	HTTPStatus() int
}

// CodeForStatus maps a backend HTTP status to an ErrorCode.
// Statuses without a matching category return "".
func CodeForStatus(status int) ErrorCode {
	switch status {
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrCodeValidation
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrCodeUnauthenticated
	}
	if status >= 500 {
		return ErrCodeInternal
	}
	return ""
}

// GetCode returns the code of the first AppError or StatusCoder in err's chain,
// or "" when there is none.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	var sc StatusCoder
	if errors.As(err, &sc) {
		return CodeForStatus(sc.HTTPStatus())
	}
	return ""
}

func IsNotFound(err error) bool        { return GetCode(err) == ErrCodeNotFound }
func IsConflict(err error) bool        { return GetCode(err) == ErrCodeConflict }
func IsValidation(err error) bool      { return GetCode(err) == ErrCodeValidation }
func IsUnauthenticated(err error) bool { return GetCode(err) == ErrCodeUnauthenticated }
func IsInternal(err error) bool        { return GetCode(err) == ErrCodeInternal }

// GetField returns the Field of the first AppError in err's chain.
func GetField(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Field
	}
	return ""
}
