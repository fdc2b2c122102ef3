package validators

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "task-tracker.com/task-tracker/internal/errors"
)

const messageInvalidInput = "Invalid input data"

// BindJSON decodes exactly one JSON object from the request body. Unknown and
// wrongly typed properties are field failures; broken syntax is not. An empty
// body decodes to the zero value so that validation reports the missing fields.
func BindJSON(c echo.Context, dst any) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return decodeError(err)
	}

	var trailing json.RawMessage
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		return apperrors.ErrInvalidJSON
	}
	return nil
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperrors.NewValidationError(messageInvalidInput, []apperrors.FieldError{{
			Field:   typeErr.Field,
			Message: typeErr.Field + " must be " + kindName(typeErr.Type),
		}})
	}

	if field, ok := unknownField(err); ok {
		return apperrors.NewValidationError(messageInvalidInput, []apperrors.FieldError{{
			Field:   field,
			Message: "property " + field + " should not exist",
		}})
	}

	return apperrors.ErrInvalidJSON
}

// encoding/json reports unknown fields only as text: json: unknown field "x".
func unknownField(err error) (string, bool) {
	rest, ok := strings.CutPrefix(err.Error(), "json: unknown field ")
	if !ok {
		return "", false
	}
	field, uerr := strconv.Unquote(rest)
	if uerr != nil {
		return "", false
	}
	return field, true
}

func kindName(t reflect.Type) string {
	if t == nil {
		return "of a valid type"
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Slice, reflect.Array:
		return "an array"
	default:
		return "an object"
	}
}
