package vzaar

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrUnexpectedStatus matches every *StatusError.
	ErrUnexpectedStatus = errors.New("vzaar: unexpected status")
	// ErrUploadTooLarge is returned when an upload exceeds Settings.MaxVideoSize.
	ErrUploadTooLarge = errors.New("vzaar: upload exceeds maximum video size")
	// ErrMalformedResponse is returned when a successful response lacks expected fields.
	ErrMalformedResponse = errors.New("vzaar: malformed response")
	// ErrMissingCredentials is returned by New when the client id or auth token is blank.
	ErrMissingCredentials = errors.New("vzaar: client id and auth token are required")
)

const maxSnippetBytes = 512

// StatusError reports a response whose status differs from the one the endpoint promises.
type StatusError struct {
	Method     string
	Endpoint   string
	Expected   int
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("vzaar: %s %s: expected status %d, got %d", e.Method, e.Endpoint, e.Expected, e.StatusCode)
	if snippet := readBodySnippet(e.Body); snippet != "" {
		msg += ": " + snippet
	}
	return msg
}

// Is reports ErrUnexpectedStatus as a match.
func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

func readBodySnippet(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	if len(body) > maxSnippetBytes {
		body = body[:maxSnippetBytes]
	}
	return strings.TrimSpace(string(body))
}
