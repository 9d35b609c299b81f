package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	validators "github.com/go-playground/validator/v10"
)

// Validator interface
type Validator interface {
	ValidateStruct(inf interface{}) error
}

type validator struct {
	validator *validators.Validate
}

// New Validator func
func New() Validator {
	v := validators.New()
	// report json field names so messages line up with the request body
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return &validator{
		validator: v,
	}
}

// ValidateStruct func
func (v *validator) ValidateStruct(inf interface{}) error {

	return v.validator.Struct(inf)
}

// FieldErrors func - flattens a validation error into field -> messages.
// Returns nil when err carries no field errors.
func FieldErrors(err error) map[string][]string {
	var verrs validators.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = append(fields[fe.Field()], message(fe))
	}
	return fields
}

func message(fe validators.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "oneof":
		return fmt.Sprintf("Must be one of: %s.", fe.Param())
	case "min", "gte":
		return fmt.Sprintf("Must be at least %s.", fe.Param())
	case "max", "lte":
		return fmt.Sprintf("Must be at most %s.", fe.Param())
	case "eqfield":
		return fmt.Sprintf("Must match %s.", fe.Param())
	default:
		return fmt.Sprintf("Failed on the '%s' rule.", fe.Tag())
	}
}
