package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/openhire/jobboard-service/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// runValidation executes struct tag validation and converts the first
// failure into a domain validation error keyed by the JSON field name.
func runValidation(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.ErrInvalidField("body", "validation failed")
	}

	fe := verrs[0]
	field := jsonFieldName(s, fe.StructField())
	if fe.Tag() == "required" {
		return domain.ErrMissingField(field)
	}
	return domain.ErrInvalidField(field, fe.Tag())
}

// jsonFieldName resolves the json tag for a struct field, falling back
// to the lowercased Go name.
func jsonFieldName(s any, structField string) string {
	t := reflect.TypeOf(s)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t != nil && t.Kind() == reflect.Struct {
		if f, ok := t.FieldByName(structField); ok {
			tag := f.Tag.Get("json")
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			if tag != "" && tag != "-" {
				return tag
			}
		}
	}
	return strings.ToLower(structField)
}
