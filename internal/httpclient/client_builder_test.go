package httpclient

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClientBuilder(t *testing.T) {
	logger := zerolog.Nop()
	builder := NewHTTPClientBuilder(logger)

	client, err := builder.
		WithTimeout(15 * time.Second).
		WithUserAgent("test-agent").
		WithFollowRedirects(false).
		WithInsecureSkipVerify(true).
		WithMaxRedirects(2).
		Build()

	require.NoError(t, err)
	assert.NotNil(t, client)
	assert.Equal(t, 15*time.Second, client.config.Timeout)
	assert.Equal(t, "test-agent", client.config.UserAgent)
	assert.False(t, client.config.FollowRedirects)
	assert.True(t, client.config.InsecureSkipVerify)
	assert.Equal(t, 2, client.config.MaxRedirects)
	assert.Nil(t, client.retryHandler)
}

func TestHTTPClientBuilder_DefaultValues(t *testing.T) {
	client, err := NewHTTPClientBuilder(zerolog.Nop()).Build()
	require.NoError(t, err)

	defaults := DefaultHTTPClientConfig()

	assert.Equal(t, defaults.Timeout, client.config.Timeout)
	assert.Equal(t, defaults.UserAgent, client.config.UserAgent)
	assert.Equal(t, defaults.FollowRedirects, client.config.FollowRedirects)
	assert.False(t, client.config.InsecureSkipVerify)
}

func TestHTTPClientBuilder_WithRetry(t *testing.T) {
	client, err := NewHTTPClientBuilder(zerolog.Nop()).
		WithRetry(DefaultRetryHandlerConfig()).
		Build()
	require.NoError(t, err)
	require.NotNil(t, client.retryHandler)
	assert.Equal(t, 3, client.retryHandler.maxRetries)

	noRetries := DefaultRetryHandlerConfig()
	noRetries.MaxRetries = 0
	client, err = NewHTTPClientBuilder(zerolog.Nop()).WithRetry(noRetries).Build()
	require.NoError(t, err)
	assert.Nil(t, client.retryHandler)
}

func TestHTTPClientBuilder_InvalidProxy(t *testing.T) {
	_, err := NewHTTPClientBuilder(zerolog.Nop()).WithProxy("://bad").Build()
	assert.Error(t, err)
}
