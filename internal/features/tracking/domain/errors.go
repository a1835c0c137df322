package domain

import "fmt"

// TransportError is returned when the upstream call could not be completed
// or the upstream answered with a non-2xx status.
type TransportError struct {
	// Endpoint is the upstream path that was called (e.g., "trackingInfo").
	Endpoint string
	// StatusCode is the HTTP status returned by upstream. Zero on network failures.
	StatusCode int
	// Body is the beginning of the upstream response body, if any.
	Body string
	// Err is the underlying network error, if any.
	Err error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		if e.Body != "" {
			return fmt.Sprintf("sweettracker %s: unexpected status %d: %s", e.Endpoint, e.StatusCode, e.Body)
		}
		return fmt.Sprintf("sweettracker %s: unexpected status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("sweettracker %s: request failed: %v", e.Endpoint, e.Err)
}

// Unwrap returns the underlying network error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when the upstream body is not valid JSON or lacks the expected shape.
type DecodeError struct {
	// Endpoint is the upstream path that was called.
	Endpoint string
	// Err describes what could not be decoded.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("sweettracker %s: failed to decode response: %v", e.Endpoint, e.Err)
}

// Unwrap returns the decoding failure.
func (e *DecodeError) Unwrap() error {
	return e.Err
}
