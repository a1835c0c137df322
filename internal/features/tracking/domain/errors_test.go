package domain

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTransportError_Error verifies both status and network failure messages.
func TestTransportError_Error(t *testing.T) {
	statusErr := &TransportError{Endpoint: "companylist", StatusCode: 503, Body: "maintenance"}
	assert.Equal(t, "sweettracker companylist: unexpected status 503: maintenance", statusErr.Error())

	noBody := &TransportError{Endpoint: "recommend", StatusCode: 404}
	assert.Equal(t, "sweettracker recommend: unexpected status 404", noBody.Error())

	netErr := &TransportError{Endpoint: "trackingInfo", Err: io.ErrUnexpectedEOF}
	assert.Contains(t, netErr.Error(), "request failed")
	assert.ErrorIs(t, netErr, io.ErrUnexpectedEOF)
}

// TestDecodeError_As verifies that a wrapped DecodeError is still reachable through errors.As.
func TestDecodeError_As(t *testing.T) {
	cause := errors.New("missing Company field")
	wrapped := fmt.Errorf("service: failed to list couriers: %w", &DecodeError{Endpoint: "companylist", Err: cause})

	var decodeErr *DecodeError
	assert.True(t, errors.As(wrapped, &decodeErr))
	assert.Equal(t, "companylist", decodeErr.Endpoint)
	assert.ErrorIs(t, wrapped, cause)

	var transportErr *TransportError
	assert.False(t, errors.As(wrapped, &transportErr))
}
