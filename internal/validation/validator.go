package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	Validator = validator.New()
)

func ValidateStruct(s interface{}) error {
	return Validator.Struct(s)
}

// OneOf checks a value against a fixed allowed set; empty values pass so the
// backend's own defaults can apply.
func OneOf(field, value string, allowed []string) error {
	if value == "" {
		return nil
	}
	for _, candidate := range allowed {
		if value == candidate {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of %v", field, allowed)
}
