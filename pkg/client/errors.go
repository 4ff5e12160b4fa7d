package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTransport marks network failures and HTTP failures that are neither
	// not-found nor validation errors.
	ErrTransport = errors.New("transport failure")

	// ErrNotFound marks a missing document, page or other resource.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks a payload rejected by the server, or arguments
	// rejected before sending.
	ErrValidation = errors.New("validation failure")
)

// APIError is a non-2xx response from the document API.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %s: API returned status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: API returned status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// Is classifies the error for errors.Is.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrValidation:
		return e.StatusCode == http.StatusBadRequest ||
			e.StatusCode == http.StatusUnprocessableEntity
	case ErrTransport:
		return e.StatusCode != http.StatusNotFound &&
			e.StatusCode != http.StatusBadRequest &&
			e.StatusCode != http.StatusUnprocessableEntity
	}
	return false
}

// IsNotFound reports whether err is, or wraps, a not-found failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
