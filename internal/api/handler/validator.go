package handler

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// codice ATECO: exactly two digits, dot, two digits, dot, two digits.
var atecoFormat = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{2}$`)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
// Field names in error messages come from the json tags.
func NewValidator() *echoValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("ateco", validateAteco); err != nil {
		panic(err)
	}
	return &echoValidator{v: v}
}

func validateAteco(fl validator.FieldLevel) bool {
	return atecoFormat.MatchString(fl.Field().String())
}

// Validate satisfies the echo.Validator interface. Checking is fail-fast:
// only the first failing rule is reported.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			return errors.New(fieldError(ve[0]))
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be zero or positive", field)
	case "ateco":
		return fmt.Sprintf("%s has an invalid format (expected: 62.01.00)", field)
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
