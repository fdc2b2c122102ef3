package errors

import "net/http"

const CodeAuthentication = "AUTHENTICATION_FAILED"

func NewAuthenticationError(message string) *Exception {
	if message == "" {
		message = "Authentication failed"
	}
	return &Exception{
		Message:    message,
		StatusCode: http.StatusUnauthorized,
		Code:       CodeAuthentication,
	}
}
