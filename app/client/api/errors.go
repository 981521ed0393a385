package api

import (
	"errors"
	"fmt"
)

// ErrSessionExpired is returned when the server rejected the stored
// credential; the interceptor has already dropped the session by the time a
// caller sees this.
var ErrSessionExpired = errors.New("session expired")

// ErrForbidden is an ownership rejection on a diary mutation. The session is
// still valid; only this operation was denied.
var ErrForbidden = errors.New("operation not permitted")

// APIError is any other failure response, passed through to the caller.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (%d)", e.StatusCode)
}
