package errors

import (
	"fmt"
	"net/http"
)

const CodeNotFound = "RESOURCE_NOT_FOUND"

func NewNotFoundError(resourceType string, identifier any) *Exception {
	return &Exception{
		Message:    fmt.Sprintf("%s with identifier %v not found", resourceType, identifier),
		StatusCode: http.StatusNotFound,
		Code:       CodeNotFound,
	}
}
