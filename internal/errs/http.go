package errs

import (
	"net/http"
)

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// Parameters:
//   - message: text to send to the client (e.g. "Validation failed")
//   - errors: optional slice of field errors (validation errors)
//
// This is designed for form validation and malformed-input cases.
func NewBadRequestError(message string, errors []FieldError) *HTTPError {
	return &HTTPError{
		Success: false,
		Message: message,
		Status:  http.StatusBadRequest,
		Errors:  errors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{
		Success: false,
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is the generic status text, never the real internal
// error: clients do not get implementation detail or stack traces.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Success: false,
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}
