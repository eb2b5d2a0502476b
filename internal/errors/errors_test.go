package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	params := []struct {
		code     ErrorCode
		expected int
	}{
		{BadRequest, http.StatusBadRequest},
		{ValidationFailed, http.StatusBadRequest},
		{TextTooLarge, http.StatusRequestEntityTooLarge},
		{RateLimitExceeded, http.StatusTooManyRequests},
		{ModelCorrupted, http.StatusInternalServerError},
		{ServiceUnavailable, http.StatusServiceUnavailable},
		{Timeout, http.StatusRequestTimeout},
		{InternalError, http.StatusInternalServerError},
	}
	for _, p := range params {
		assert.Equalf(t, p.expected, NewAPIError(p.code, "message").HTTPStatus(), "code %s", p.code)
	}
}

func TestErrorInterface(t *testing.T) {
	err := NewBadRequestError("missing text")
	assert.Equal(t, "BAD_REQUEST: missing text", err.Error())
}

func TestWithField(t *testing.T) {
	err := NewValidationError("invalid request").
		WithField("text", "required").
		WithRequestID("req-42")

	assert.Equal(t, "required", err.Fields["text"])
	assert.Equal(t, "req-42", err.RequestID)
}

func TestWrapAndUnwrap(t *testing.T) {
	wrapped := WrapError(errors.New("disk on fire"), ModelCorrupted, "model load failed")
	assert.Equal(t, ModelCorrupted, wrapped.Code)
	assert.Equal(t, "disk on fire", wrapped.Details)

	apiErr, ok := IsAPIError(wrapped)
	require.True(t, ok)
	assert.Equal(t, wrapped, apiErr)

	_, ok = IsAPIError(errors.New("plain"))
	assert.False(t, ok)
}
