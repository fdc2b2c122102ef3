package validators

import (
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "task-tracker.com/task-tracker/internal/errors"
)

// ParseID reads an integer path parameter, failing validation before any
// service call is made.
func ParseID(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError(
			"Validation failed (numeric string is expected)",
			[]apperrors.FieldError{{Field: name, Message: name + " must be an integer"}},
		)
	}
	return uint(id), nil
}
