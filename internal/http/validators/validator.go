package validators

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"task-tracker.com/task-tracker/internal/constants"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

// StatusEnumMessage replaces whatever the constraint engine says about a bad status.
var StatusEnumMessage = "Status must be one of: " + StatusValues()

// Validator adapts go-playground/validator to echo.Validator.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	return &Validator{validate: v}
}

// Validate returns validator.ValidationErrors untouched so the error boundary
// can classify them as field validation failures.
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

// FieldErrors converts constraint violations into field errors, one per violation.
func FieldErrors(errs validator.ValidationErrors) []apperrors.FieldError {
	out := make([]apperrors.FieldError, 0, len(errs))
	for _, fe := range errs {
		out = append(out, apperrors.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	if fe.Field() == "status" && fe.Tag() == "oneof" {
		return StatusEnumMessage
	}

	label := capitalize(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s should not be empty", label)
	case "max":
		return fmt.Sprintf("%s must be shorter than or equal to %s characters", label, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be longer than or equal to %s characters", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// StatusValues lists the allowed statuses as "a, b, c".
func StatusValues() string {
	values := make([]string, 0, len(constants.TaskStatuses))
	for _, s := range constants.TaskStatuses {
		values = append(values, s.String())
	}
	return strings.Join(values, ", ")
}
