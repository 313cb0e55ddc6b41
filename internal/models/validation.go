package models

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by every record type. A validator.Validate caches
// struct metadata and is safe for concurrent use once configured.
var validate = newValidator()

// enum is implemented by the closed string types in types.go.
type enum interface {
	Valid() bool
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names, they are what API clients see
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(enum)
		return ok && e.Valid()
	})
	mustRegister(v, "finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})

	return v
}

// mustRegister panics when a rule cannot be registered, so a bad tag
// fails at init rather than on first use.
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %q validation: %v", tag, err))
	}
}

// Engine exposes the configured validator, e.g. for HTTP binding.
// Rules live in validate tags rather than gin's binding tags because the
// same rules run outside HTTP, in every constructor of this package.
func Engine() *validator.Validate {
	return validate
}

// ValidationError describes one field that failed validation.
type ValidationError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
	Value any    `json:"-"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message())
}

// Message is the human readable form of the violated rule.
func (e ValidationError) Message() string {
	var msg string
	switch e.Rule {
	case "required":
		return "is required"
	case "email":
		msg = "must be a valid email address"
	case "enum":
		msg = "is not an accepted value"
	case "finite":
		msg = "must be a finite number"
	case "gt":
		msg = "must be greater than " + e.Param
	case "gte":
		msg = "must be at least " + e.Param
	case "lt":
		msg = "must be less than " + e.Param
	case "lte":
		msg = "must be at most " + e.Param
	case "gtefield":
		msg = "must not be before " + e.Param
	case "datetime":
		msg = "must be a date formatted as " + e.Param
	case "product":
		msg = "must equal " + e.Param
	default:
		msg = fmt.Sprintf("failed %q rule", e.Rule)
	}
	return fmt.Sprintf("%s (got %v)", msg, e.Value)
}

// ValidationErrors collects every field a record failed on.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	messages := make([]string, 0, len(e))
	for _, err := range e {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

// As lets errors.As extract the first ValidationError.
func (e ValidationErrors) As(target any) bool {
	t, ok := target.(*ValidationError)
	if !ok || len(e) == 0 {
		return false
	}
	*t = e[0]
	return true
}

// Field returns the violation reported for the named field, if any.
func (e ValidationErrors) Field(name string) (ValidationError, bool) {
	for _, err := range e {
		if err.Field == name {
			return err, true
		}
	}
	return ValidationError{}, false
}

// Has reports whether the named field failed validation.
func (e ValidationErrors) Has(name string) bool {
	_, ok := e.Field(name)
	return ok
}

// Validate checks a record (struct or pointer to struct) against its
// validate tags. It returns nil or a ValidationErrors.
func Validate(record any) error {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate %T: %w", record, err)
	}

	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
			Value: fe.Value(),
		})
	}
	return out
}

// merge appends extra violations to whatever Validate returned.
func merge(err error, extra ...ValidationError) error {
	if len(extra) == 0 {
		return err
	}
	if err == nil {
		return ValidationErrors(extra)
	}
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	return append(verrs, extra...)
}
