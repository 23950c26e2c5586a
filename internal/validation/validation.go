// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules (like
// required fields or email formats) defined in struct tags
// and extracts validation errors into a format the client can
// understand.
package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/himawari-kids/inquiry-api/internal/errs"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// Typical pattern:
//   - Define a request struct with validator tags (`validate:"required,email"`)
//   - Implement Validate() error that calls validation.Struct(req)
type Validatable interface {
	Validate() error
}

var (
	// personNameRegex accepts Latin and Japanese names: Latin letters,
	// kana, kanji, the long-vowel mark, the middle dot, and spaces
	// (including the ideographic space).
	personNameRegex = regexp.MustCompile(`^[\p{Latin}\p{Hiragana}\p{Katakana}\p{Han}ー・' \x{3000}-]+$`)

	// phoneRegex accepts digits, "+", "-", parentheses and spaces,
	// 10 to 20 characters overall.
	phoneRegex = regexp.MustCompile(`^[0-9+\-() ]{10,20}$`)
)

// validate is the shared validator instance. Custom rules and the
// JSON tag-name mapping are registered once at package init.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report field names as their JSON keys so clients can map
	// errors back onto form inputs directly.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Errors from RegisterValidation only occur for empty tag names.
	_ = v.RegisterValidation("person_name", func(fl validator.FieldLevel) bool {
		return personNameRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})

	return v
}

// Struct runs the shared validator against v.
//
// Fields are checked in declaration order and errors accumulate; the
// resulting validator.ValidationErrors preserves that order.
func Struct(v interface{}) error {
	return validate.Struct(v)
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. c.Bind(payload) populates the request struct from the incoming body.
//  2. payload.Validate() applies the validation rules.
//  3. Returns *errs.HTTPError (400) with field-level errors if validation fails.
//
// NOTE: payload must be a pointer to a struct so c.Bind can mutate it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		// Malformed JSON or a type mismatch. Echo's bind error text is
		// driver-internal, so the client gets a fixed message.
		return errs.NewBadRequestError("Invalid request body", nil)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, fieldErrors)
	}

	return nil
}

// validateStruct calls v.Validate() and extracts field errors if validation fails.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}
