package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrUnreachable wraps transport-level failures: the server could not be
// contacted at all.
var ErrUnreachable = errors.New("cannot reach server")

// APIError is a backend-rejected request. Message carries the response
// body's message field when present, otherwise a generic per-status
// fallback.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// IsUnauthorized reports whether err is a 401 APIError.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// IsNotFound reports whether err is a 404 APIError.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

func fallbackMessage(status int) string {
	switch {
	case status == http.StatusBadRequest:
		return "invalid request data"
	case status == http.StatusUnauthorized:
		return "not authorized"
	case status == http.StatusNotFound:
		return "resource not found"
	case status >= 500:
		return "internal server error"
	default:
		return fmt.Sprintf("request failed with status %d", status)
	}
}

// errorFromResponse maps a non-2xx response to an APIError, preferring the
// body's message/mensaje field over the generic fallback. Server errors
// (5xx) never expose the body.
func errorFromResponse(resp *http.Response) error {
	msg := fallbackMessage(resp.StatusCode)
	if resp.StatusCode < 500 {
		if body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16)); err == nil {
			var m MessageResponse
			if json.Unmarshal(body, &m) == nil && m.Text() != "" {
				msg = m.Text()
			}
		}
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
}
