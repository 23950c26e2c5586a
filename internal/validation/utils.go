package validation

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/himawari-kids/inquiry-api/internal/errs"
)

// extractValidationError converts validator errors into user-friendly
// per-field messages.
func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not tag-driven validation; report it as a single opaque failure.
		return "Validation failed", []errs.FieldError{
			{Field: "", Message: err.Error()},
		}
	}

	for _, fe := range validationErrors {
		var msg string

		switch fe.Tag() {
		case "required":
			msg = "is required"

		case "min":
			// min means minimum length for strings, minimum value for numbers.
			if fe.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", fe.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", fe.Param())
			}

		case "max":
			if fe.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", fe.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", fe.Param())
			}

		case "gte":
			msg = fmt.Sprintf("must be at least %s", fe.Param())

		case "lte":
			msg = fmt.Sprintf("must not exceed %s", fe.Param())

		case "email":
			msg = "must be a valid email address"

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", fe.Param())

		case "person_name":
			msg = "may only contain letters and spaces"

		case "phone":
			msg = "must be a valid phone number (10-20 characters, digits and +-() only)"

		default:
			// Fallback for tags not explicitly handled above.
			if fe.Param() != "" {
				msg = fmt.Sprintf("failed %s:%s validation", fe.Tag(), fe.Param())
			} else {
				msg = fmt.Sprintf("failed %s validation", fe.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field:   fe.Field(),
			Message: msg,
		})
	}

	return "Validation failed", fieldErrors
}
