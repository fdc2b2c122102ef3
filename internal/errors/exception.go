package errors

import "errors"

// FieldError describes why a single input attribute was rejected.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Exception is an application failure with a stable machine-readable code.
// It is raised where the failure is detected and only rendered at the HTTP
// boundary.
type Exception struct {
	Message    string
	StatusCode int
	Code       string
	Details    []FieldError
}

func (e *Exception) Error() string {
	return e.Message
}

// As reports whether err wraps an *Exception and returns it.
func As(err error) (*Exception, bool) {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
