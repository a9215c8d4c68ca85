package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
)

var (
	ErrUnavailable = errors.New("server unavailable")
	ErrNotFound    = errors.New("not found")
)

// RequestError is returned for any non-2xx response.
type RequestError struct {
	Method     string
	Path       string
	StatusCode int
	// StatusText is the reason phrase of the status line, e.g. "Not Found".
	StatusText string
	// Body is the raw response body.
	Body string
}

// Error returns the body text verbatim, or the status phrase when the body
// is empty.
func (e *RequestError) Error() string {
	if e.Body != "" {
		return e.Body
	}
	return e.StatusText
}

// Is makes errors.Is(err, ErrNotFound) hold for 404 responses.
func (e *RequestError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// IsNotFound reports whether err is a 404 RequestError.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// statusPhrase extracts the reason phrase from a status line such as
// "404 Not Found", falling back to the standard text for code.
func statusPhrase(status string, code int) string {
	phrase := strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(code)))
	if phrase == "" {
		phrase = http.StatusText(code)
	}
	return phrase
}
