package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "task-tracker.com/task-tracker/internal/errors"
)

// HeaderResponseCode carries the envelope code on bodiless 204 responses.
const HeaderResponseCode = "X-Response-Code"

type SuccessResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Fields  []apperrors.FieldError `json:"fields,omitempty"`
}

// Meta overrides the status-derived code and message of a route.
type Meta struct {
	Code    string
	Message string
}

var defaultCodes = map[int]string{
	http.StatusOK:        "SUCCESS",
	http.StatusCreated:   "CREATED",
	http.StatusAccepted:  "ACCEPTED",
	http.StatusNoContent: "DELETED",
}

var defaultMessages = map[int]string{
	http.StatusOK:        "Operation successful",
	http.StatusCreated:   "Resource created successfully",
	http.StatusAccepted:  "Request accepted",
	http.StatusNoContent: "Resource deleted successfully",
}

func DefaultCode(status int) string {
	if code, ok := defaultCodes[status]; ok {
		return code
	}
	return "SUCCESS"
}

func DefaultMessage(status int) string {
	if msg, ok := defaultMessages[status]; ok {
		return msg
	}
	return "Operation successful"
}

func NewSuccess(status int, meta Meta, data any) SuccessResponse {
	res := SuccessResponse{
		Code:    meta.Code,
		Message: meta.Message,
		Data:    data,
	}
	if res.Code == "" {
		res.Code = DefaultCode(status)
	}
	if res.Message == "" {
		res.Message = DefaultMessage(status)
	}
	if status == http.StatusNoContent {
		res.Data = nil
	}
	return res
}

// Success writes data wrapped in the success envelope.
func Success(c echo.Context, status int, meta Meta, data any) error {
	body := NewSuccess(status, meta, data)

	if status == http.StatusNoContent {
		c.Response().Header().Set(HeaderResponseCode, body.Code)
		return c.NoContent(status)
	}

	return c.JSON(status, body)
}
