package validate

import (
	"github.com/go-playground/validator/v10"
)

var v = validator.New()

// Struct validates a bound request DTO against its `validate` tags.
func Struct(obj any) error {
	return v.Struct(obj)
}
