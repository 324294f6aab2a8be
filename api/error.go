package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a non-2xx backend response.
type Error struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v %v: %d %v: %s", e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}

// IsStatus reports whether err is an *Error with the given status code.
func IsStatus(err error, statusCode int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == statusCode
}

// IsUnauthorized reports whether the backend rejected the call with 401.
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}

// IsNotFound reports whether the backend responded with 404.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}
