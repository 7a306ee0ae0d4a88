package hub

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidReference is returned when a chart identifier is not "repository/chart"
	ErrInvalidReference = errors.New("invalid chart reference")

	// ErrNotFound matches a RequestError caused by an HTTP 404
	ErrNotFound = errors.New("not found")
)

// RequestError is an HTTP failure: either the transport failed or the
// server answered with a non-2xx status.
type RequestError struct {
	Method     string
	URL        string
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
	}
	return fmt.Sprintf("%s %s: unexpected status %d %s", e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Is reports a 404 response as ErrNotFound
func (e *RequestError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// MalformedResponseError means the API answered 2xx but the body could not be
// decoded or lacks a required field.
type MalformedResponseError struct {
	URL    string
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %s", e.URL, e.Reason)
}
