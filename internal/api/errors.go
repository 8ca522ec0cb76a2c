package api

import (
	"errors"
	"fmt"
	"net/http"
)

// NetworkError is returned when no HTTP response was received.
type NetworkError struct {
	Op  string
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("api: %s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPStatusError is returned for any non-2xx response.
type HTTPStatusError struct {
	Op         string
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("api: %s: HTTP error %d: %s: %s", e.Op, e.StatusCode, e.Status, e.Body)
	}
	return fmt.Sprintf("api: %s: HTTP error %d: %s", e.Op, e.StatusCode, e.Status)
}

// DecodeError is returned when a 2xx body is not the expected JSON.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("api: %s: decode response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var se *HTTPStatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}

// IsNotFound reports whether err is a 404 from the API. The search endpoint
// answers 404 when nothing matches.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsNetwork reports whether err means the request never got a response.
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}
