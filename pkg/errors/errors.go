package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an error that knows which status code to send.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

// NewHTTPError creates an HTTPError whose error code equals the status code.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Code:       statusCode,
		Message:    message,
	}
}

func (e *HTTPError) Error() string {
	return e.Message
}

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
)

// AsHTTPError reports whether err wraps an *HTTPError and returns it.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
