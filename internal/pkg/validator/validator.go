// Package validator wraps go-playground/validator for checking structs
// against their `validate:` tags outside the gin binding path (seed
// fixtures, background jobs).
package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate returns nil when v passes, otherwise a field -> failed-tag map.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	out := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
