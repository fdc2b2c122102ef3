package errors

import "net/http"

const CodeValidation = "VALIDATION_ERROR"

func NewValidationError(message string, details []FieldError) *Exception {
	return &Exception{
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Code:       CodeValidation,
		Details:    details,
	}
}

var ErrInvalidJSON = &Exception{
	Message:    "Invalid JSON payload",
	StatusCode: http.StatusBadRequest,
	Code:       "BAD_REQUEST",
}
