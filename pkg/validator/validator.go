package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name so messages match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("oneofci", oneOfCaseInsensitive)

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required", "notblank":
				errs[field] = field + " is required"
			case "email":
				errs[field] = field + " must be a valid email address"
			case "len":
				errs[field] = field + " must be exactly " + e.Param() + " characters"
			case "number":
				errs[field] = field + " must contain digits only"
			case "oneof", "oneofci":
				errs[field] = field + " must be one of: " + strings.Join(strings.Fields(e.Param()), ", ")
			case "min":
				errs[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errs[field] = field + " must be at most " + e.Param() + " characters"
			case "gt":
				errs[field] = field + " must be greater than " + e.Param()
			case "gte":
				errs[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errs[field] = field + " must be less than or equal to " + e.Param()
			default:
				errs[field] = field + " is invalid"
			}
		}
	}

	return errs
}

// oneOfCaseInsensitive behaves like oneof but ignores letter case.
func oneOfCaseInsensitive(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	value := field.String()
	for _, allowed := range strings.Fields(fl.Param()) {
		if strings.EqualFold(value, allowed) {
			return true
		}
	}
	return false
}
