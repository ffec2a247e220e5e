package errorwrapper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapError(t *testing.T) {
	base := errors.New("boom")
	err := WrapError(base, "sending message")

	assert.ErrorIs(t, err, base)
	assert.Equal(t, "sending message: boom", err.Error())
	assert.Equal(t, "sending message: <nil>", WrapError(nil, "sending message").Error())
}

func TestValidationError_MatchesInvalidInput(t *testing.T) {
	err := NewValidationError("title", "x", "title cannot exceed 256 characters")

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "field 'title'")

	var ve *ValidationError
	assert.True(t, errors.As(WrapError(err, "building embed"), &ve))
	assert.Equal(t, "title", ve.Field)
}

func TestHTTPError_Message(t *testing.T) {
	withURL := NewHTTPErrorWithURL(429, "rate limited", "https://discord.com/api/webhooks/1/x")
	assert.Equal(t, "HTTP 429 error for URL 'https://discord.com/api/webhooks/1/x': rate limited", withURL.Error())

	withoutURL := NewHTTPErrorWithURL(500, "oops", "")
	assert.Equal(t, "HTTP 500 error: oops", withoutURL.Error())
}

func TestNetworkError_Unwrap(t *testing.T) {
	base := errors.New("connection refused")
	err := NewNetworkError("https://example.com", "dial failed", base)

	assert.ErrorIs(t, err, base)
}
