package contract

import (
	"errors"
	"fmt"
)

// Failure taxonomy of the upstream boundary.
var (
	// ErrNetworkFailure wraps transport errors (DNS, TLS, timeouts, resets).
	ErrNetworkFailure = errors.New("network failure")

	// ErrMalformedResponse means the body did not match the expected schema.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrUpstreamUnavailable is surfaced when a fetch fails and no cached value exists.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// UpstreamError is returned for non-success HTTP status codes.
type UpstreamError struct {
	StatusCode  int
	Status      string
	RateLimited bool
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	if e.RateLimited {
		return fmt.Sprintf("upstream rate limited: %s", e.Status)
	}
	return fmt.Sprintf("upstream returned %s", e.Status)
}

// IsUpstreamFailure reports whether err belongs to the fetch failure taxonomy.
func IsUpstreamFailure(err error) bool {
	var upstreamErr *UpstreamError
	return errors.Is(err, ErrNetworkFailure) ||
		errors.Is(err, ErrMalformedResponse) ||
		errors.As(err, &upstreamErr)
}
