package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = validator.New()

// Struct validates tagged request structs. The returned error is safe to echo
// to API callers.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", field))
		case "email":
			parts = append(parts, fmt.Sprintf("%s must be a valid email", field))
		case "len", "min", "max":
			parts = append(parts, fmt.Sprintf("%s has invalid length", field))
		case "numeric":
			parts = append(parts, fmt.Sprintf("%s must be numeric", field))
		case "oneof":
			parts = append(parts, fmt.Sprintf("%s has an unsupported value", field))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", field))
		}
	}
	return errors.New(strings.Join(parts, "; "))
}
