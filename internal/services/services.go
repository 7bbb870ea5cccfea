// package services defines clients for the upstream HTTP APIs the relay talks to
//
// Spotify Web API
package services

import (
	"fmt"
	"net/http"

	"github.com/desertthunder/genie/internal/shared"
)

// RawResponse is an upstream response kept byte-for-byte so it can be relayed unchanged.
type RawResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// ContentType returns the upstream Content-Type, defaulting to JSON.
func (r *RawResponse) ContentType() string {
	if ct := r.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/json"
}

// UpstreamError reports a completed upstream round trip whose status was not 200.
//
// Matches [shared.ErrUpstreamRejected] with [errors.Is].
type UpstreamError struct {
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%v: status %d", shared.ErrUpstreamRejected, e.StatusCode)
}

func (e *UpstreamError) Is(target error) bool {
	return target == shared.ErrUpstreamRejected
}

// TransportError reports a failure to complete the upstream round trip (DNS, connect, timeout, cancellation).
//
// Error returns the underlying message unchanged; matches [shared.ErrAPIRequest] with [errors.Is].
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == shared.ErrAPIRequest
}
