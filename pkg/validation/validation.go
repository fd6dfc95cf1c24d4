package validation

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators wires the service-specific rules and the
// json-tag field naming into the validator gin binds with.
func RegisterCustomValidators(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v.RegisterValidation("joinyear", validJoinYear)
}

// validJoinYear bounds a joining year to (1900, current calendar year].
func validJoinYear(fl validator.FieldLevel) bool {
	year := int(fl.Field().Int())
	return year > 1900 && year <= time.Now().Year()
}

// FormatErrors converts a binding/validation failure into the
// field -> message mapping the API returns. Non-validator errors (for
// example malformed JSON) collapse into a single "body" entry.
func FormatErrors(err error) map[string]string {
	result := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		result["body"] = "Request body could not be parsed"
		return result
	}

	for _, e := range validationErrors {
		field := e.Field()
		if fieldMessages := CustomMessage(field); fieldMessages != nil {
			if msg, exists := fieldMessages[e.Tag()]; exists {
				result[field] = msg
				continue
			}
		}
		result[field] = DefaultMessage(field, e.Tag(), e.Param())
	}

	return result
}
