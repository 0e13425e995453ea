package validator

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate runs struct validation and returns a field-keyed map of
// failed rules, or nil when the value is valid. Field names are
// lower-cased to match the JSON wire form.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		// Non-struct input yields an InvalidValidationError instead
		// of per-field results.
		return map[string]string{"request": "invalid"}
	}

	result := make(map[string]string)
	for _, fe := range fieldErrors {
		result[strings.ToLower(fe.Field())] = fe.Tag()
	}
	return result
}
