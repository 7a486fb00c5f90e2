// Package validation binds and validates request payloads.
//
// It uses the go-playground validator to enforce rules declared in struct
// tags and converts failures into field-level errors the client can act on.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/deppfellow/student-records/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// DateLayout is the only accepted date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// InvalidDateMessage is returned when a date field doesn't match DateLayout.
const InvalidDateMessage = "Invalid date format. Use YYYY-MM-DD"

// Validatable is implemented by request payloads that know how to
// validate themselves, usually by calling Struct.
type Validatable interface {
	Validate() error
}

// RequiredMessenger lets a payload replace the generic top-level message
// when one of its required fields is missing.
type RequiredMessenger interface {
	RequiredMessage() string
}

var validate = newValidator()

// newValidator reports fields by their json name ("student_id") rather
// than the Go field name ("StudentID").
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			if param := fld.Tag.Get("param"); param != "" {
				return param
			}
			return fld.Name
		}
		return name
	})
	return v
}

// Struct validates s against its `validate` tags.
func Struct(s any) error {
	return validate.Struct(s)
}

// BindAndValidate binds request data into payload and validates it.
//
// payload must be a pointer to a struct. Bind failures (malformed JSON,
// type mismatches, non-numeric ids) and rule failures both come back as a
// 400 *errs.HTTPError.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError(bindErrorMessage(err), false, nil, nil, nil)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, nil, fieldErrors, nil)
	}

	return nil
}

func bindErrorMessage(err error) string {
	var bindingErr *echo.BindingError
	if errors.As(err, &bindingErr) {
		return fmt.Sprintf("Invalid value %q for %s", strings.Join(bindingErr.Values, ","), bindingErr.Field)
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return fmt.Sprintf("Invalid value %q", numErr.Num)
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			return msg
		}
	}
	return "Invalid request body"
}

func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		msg, fieldErrors := extractValidationError(err)
		if messenger, ok := v.(RequiredMessenger); ok && hasTag(err, "required") {
			msg = messenger.RequiredMessage()
		}
		return msg, fieldErrors
	}
	return "", nil
}

func hasTag(err error, tag string) bool {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return false
	}
	for _, fe := range validationErrors {
		if fe.Tag() == tag {
			return true
		}
	}
	return false
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError
	message := "Validation failed"

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// validator.InvalidValidationError and friends: nothing field-level
		// to report.
		return message, []errs.FieldError{{Field: "body", Error: err.Error()}}
	}

	for _, err := range validationErrors {
		field := err.Field()
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		case "min":
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}

		case "max":
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", err.Param())

		case "email":
			msg = "must be a valid email address"

		case "datetime":
			msg = "must be a date in YYYY-MM-DD format"
			message = InvalidDateMessage

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return message, fieldErrors
}
