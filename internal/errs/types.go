package errs

// FieldError represents a field-level validation error (typical for forms).
// Example:
//
//	{ "field": "email", "message": "must be a valid email address" }
type FieldError struct {
	// Field is the JSON field name the error relates to (e.g. "email").
	Field string `json:"field"`

	// Message is the human-readable error message.
	Message string `json:"message"`
}

// HTTPError is the main custom error type for API responses.
//
// It implements the `error` interface via Error() and serializes
// directly into the API's error envelope:
//
//	{ "success": false, "error": "...", "errors": [...] }
//
// Status drives the HTTP status code and is not part of the body.
type HTTPError struct {
	Success bool   `json:"success"`
	Message string `json:"error"`
	Status  int    `json:"-"`

	// Errors holds field-level validation errors, typically for form inputs.
	Errors []FieldError `json:"errors,omitempty"`
}

// Error makes *HTTPError satisfy the built-in error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is lets errors.Is match any *HTTPError regardless of status or message.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}
