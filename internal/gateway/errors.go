package gateway

import (
	"fmt"
	"net/http"
)

// HTTPError is returned when the remote service answers with a non-success
// status.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
	// Message is the envelope error text, when the body carried one.
	Message string
	Body    []byte
}

func (e *HTTPError) Error() string {
	status := e.Status
	if status == "" {
		status = fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %s: %s", e.Method, e.URL, status, e.Message)
	}
	return fmt.Sprintf("%s %s: %s", e.Method, e.URL, status)
}

// NotFound reports whether the remote service answered 404.
func (e *HTTPError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// EnvelopeError is returned when a same-origin response has success=false.
type EnvelopeError struct {
	Path    string
	Message string
}

func (e *EnvelopeError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "request unsuccessful"
	}
	return fmt.Sprintf("%s: %s", e.Path, msg)
}
