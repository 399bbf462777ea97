// Package upstream holds what the outbound HTTP clients share.
package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotConfigured is returned by a client that lacks credentials.
	ErrNotConfigured = errors.New("upstream: not configured")
	// ErrQuotaExceeded is returned when the outbound rate guard refuses a call.
	ErrQuotaExceeded = errors.New("upstream: outbound quota exceeded")
)

// StatusError carries a non-success HTTP status from an upstream.
type StatusError struct {
	Upstream string
	Code     int
	Message  string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Upstream, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: status %d", e.Upstream, e.Code)
}

// StatusCode returns the upstream code carried by err, or 500 when err
// is not a *StatusError.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) && se.Code >= 400 && se.Code < 600 {
		return se.Code
	}
	return http.StatusInternalServerError
}
