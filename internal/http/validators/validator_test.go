package validators

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker.com/task-tracker/internal/constants"
	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

func fieldErrorsOf(t *testing.T, err error) []apperrors.FieldError {
	t.Helper()

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs), "expected validator.ValidationErrors, got %v", err)
	return FieldErrors(verrs)
}

func TestValidate_CreateTaskRequest(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&dto.CreateTaskRequest{Title: "ok"}))

	fields := fieldErrorsOf(t, v.Validate(&dto.CreateTaskRequest{}))
	require.Len(t, fields, 1)
	assert.Equal(t, "title", fields[0].Field)
	assert.Equal(t, "Title should not be empty", fields[0].Message)

	fields = fieldErrorsOf(t, v.Validate(&dto.CreateTaskRequest{Title: strings.Repeat("a", 256)}))
	require.Len(t, fields, 1)
	assert.Equal(t, "Title must be shorter than or equal to 255 characters", fields[0].Message)

	assert.NoError(t, v.Validate(&dto.CreateTaskRequest{Title: strings.Repeat("a", 255)}))
}

func TestValidate_DescriptionLimit(t *testing.T) {
	v := New()
	long := strings.Repeat("d", 1001)

	fields := fieldErrorsOf(t, v.Validate(&dto.CreateTaskRequest{Title: "t", Description: &long}))
	require.Len(t, fields, 1)
	assert.Equal(t, "description", fields[0].Field)
}

func TestValidate_StatusEnumMessage(t *testing.T) {
	v := New()

	for _, status := range []constants.TaskStatus{"invalid_status", ""} {
		fields := fieldErrorsOf(t, v.Validate(&dto.UpdateTaskStatusRequest{Status: status}))
		require.Len(t, fields, 1)
		assert.Equal(t, "status", fields[0].Field)
		assert.Equal(t, StatusEnumMessage, fields[0].Message)
	}

	for _, status := range constants.TaskStatuses {
		assert.NoError(t, v.Validate(&dto.UpdateTaskStatusRequest{Status: status}))
	}

	bad := constants.TaskStatus("archived")
	fields := fieldErrorsOf(t, v.Validate(&dto.UpdateTaskRequest{Title: "t", Status: &bad}))
	require.Len(t, fields, 1)
	assert.Equal(t, StatusEnumMessage, fields[0].Message)
}

func TestStatusEnumMessage_MatchesStatuses(t *testing.T) {
	assert.Equal(t, "pending, in_progress, done", StatusValues())
	assert.Equal(t, "Status must be one of: pending, in_progress, done", StatusEnumMessage)
}

func TestParseID(t *testing.T) {
	e := echo.New()

	newCtx := func(id string) echo.Context {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues(id)
		return c
	}

	id, err := ParseID(newCtx("17"), "id")
	require.NoError(t, err)
	assert.Equal(t, uint(17), id)

	for _, raw := range []string{"abc", "1.5", "-3", ""} {
		_, err := ParseID(newCtx(raw), "id")
		appErr, ok := apperrors.As(err)
		require.True(t, ok, "expected exception for %q", raw)
		assert.Equal(t, apperrors.CodeValidation, appErr.Code)
		assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
		require.Len(t, appErr.Details, 1)
		assert.Equal(t, "id", appErr.Details[0].Field)
	}
}
