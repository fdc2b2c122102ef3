package response

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "task-tracker.com/task-tracker/internal/errors"
	"task-tracker.com/task-tracker/internal/http/validators"
)

const (
	CodeGeneric  = "ERROR"
	CodeInternal = "INTERNAL_SERVER_ERROR"

	messageInvalidInput = "Invalid input data"
	messageGeneric      = "Something went wrong"
	messageInternal     = "Internal server error"
)

// Classify maps any error to a status code and error envelope. The checks run
// in a fixed order: domain exception, field validation failure, structured
// HTTP error, plain HTTP error, then everything else as an internal error.
func Classify(err error) (int, ErrorResponse) {
	if appErr, ok := apperrors.As(err); ok {
		code := appErr.Code
		if code == "" {
			code = CodeGeneric
		}
		status := appErr.StatusCode
		if status == 0 {
			status = http.StatusInternalServerError
		}
		return status, ErrorResponse{
			Code:    code,
			Message: appErr.Message,
			Fields:  appErr.Details,
		}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest, ErrorResponse{
			Code:    apperrors.CodeValidation,
			Message: messageInvalidInput,
			Fields:  validators.FieldErrors(verrs),
		}
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, classifyHTTPError(he)
	}

	return http.StatusInternalServerError, ErrorResponse{
		Code:    CodeInternal,
		Message: messageInternal,
	}
}

func classifyHTTPError(he *echo.HTTPError) ErrorResponse {
	switch body := he.Message.(type) {
	case map[string]interface{}:
		return structuredBody(body)
	case echo.Map:
		return structuredBody(body)
	case string:
		return ErrorResponse{Code: CodeGeneric, Message: body}
	case error:
		return ErrorResponse{Code: CodeGeneric, Message: body.Error()}
	case nil:
		return ErrorResponse{Code: CodeGeneric, Message: http.StatusText(he.Code)}
	default:
		return ErrorResponse{Code: CodeGeneric, Message: fmt.Sprint(body)}
	}
}

func structuredBody(body map[string]interface{}) ErrorResponse {
	res := ErrorResponse{Code: CodeGeneric, Message: messageGeneric}
	if code, ok := body["errorCode"].(string); ok && code != "" {
		res.Code = code
	}
	if msg, ok := body["message"].(string); ok && msg != "" {
		res.Message = msg
	}
	return res
}

// NewErrorHandler is the single place that turns errors into HTTP responses.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := Classify(err)

		req := c.Request()
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(req.Context(), "request failed",
				"method", req.Method,
				"path", req.URL.Path,
				"status", status,
				"error", err,
			)
		} else {
			logger.DebugContext(req.Context(), "request rejected",
				"method", req.Method,
				"path", req.URL.Path,
				"status", status,
				"code", body.Code,
			)
		}

		if req.Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			logger.ErrorContext(req.Context(), "failed to write error response", "error", err)
		}
	}
}
