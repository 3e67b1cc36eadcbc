package providers

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrProviderUnavailable is returned when a wrapper has nothing to delegate to.
var ErrProviderUnavailable = errors.New("provider unavailable")

// StatusError captures a non-200 response from an upstream provider.
type StatusError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if msg == "" {
		msg = "request failed"
	}
	prefix := e.Provider
	if prefix == "" {
		prefix = "provider"
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", prefix, e.StatusCode, msg)
}

// Temporary reports whether the status is worth retrying.
func (e *StatusError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}
