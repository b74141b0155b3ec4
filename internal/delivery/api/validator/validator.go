// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/errors"

	playground "github.com/go-playground/validator/v10"
)

// CustomValidator validates bound request structs. Failures are reported as a
// domain ValidationError keyed by the JSON field path.
type CustomValidator struct {
	validate *playground.Validate
}

// New creates a CustomValidator that names fields after their json tags.
func New() *CustomValidator {
	validate := playground.New(playground.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validate: validate}
}

// Validate implements echo.Validator.
func (v *CustomValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs playground.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.Wrap(err, "failed to validate request")
	}

	fields := domainerrors.FieldErrors{}
	for _, fieldErr := range validationErrs {
		fields.Add(fieldPath(fieldErr), message(fieldErr))
	}

	return fields.AsError()
}

// fieldPath drops the root struct name from the namespace, so
// "createOfferRequest.details[0].price" becomes "details[0].price".
func fieldPath(fieldErr playground.FieldError) string {
	_, path, found := strings.Cut(fieldErr.Namespace(), ".")
	if !found {
		return fieldErr.Field()
	}

	return path
}

func message(fieldErr playground.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "oneof":
		return fmt.Sprintf("%q is not a valid choice.", fmt.Sprint(fieldErr.Value()))
	case "min":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has at least %s characters.", fieldErr.Param())
		}
		if fieldErr.Kind() == reflect.Slice {
			return fmt.Sprintf("Ensure this field has at least %s elements.", fieldErr.Param())
		}

		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fieldErr.Param())
	case "max":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fieldErr.Param())
		}

		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fieldErr.Param())
	case "gt":
		return fmt.Sprintf("Ensure this value is greater than %s.", fieldErr.Param())
	case "uuid":
		return "Must be a valid UUID."
	default:
		return fmt.Sprintf("Failed on the %q rule.", fieldErr.Tag())
	}
}
