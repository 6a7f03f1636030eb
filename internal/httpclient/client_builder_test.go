package httpclient

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/striker-satyam/gatewaychk/internal/common/errorwrapper"
	"github.com/striker-satyam/gatewaychk/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClientBuilder(t *testing.T) {
	client, err := NewHTTPClientBuilder(zerolog.Nop()).
		WithTimeout(15 * time.Second).
		WithUserAgent("test-agent").
		WithInsecureSkipVerify(true).
		WithMaxContentSize(1024).
		WithHTTP2(false).
		WithProxy("http://127.0.0.1:8080").
		Build()

	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, client.config.Timeout)
	assert.Equal(t, "test-agent", client.config.UserAgent)
	assert.True(t, client.config.InsecureSkipVerify)
	assert.Equal(t, 1024, client.config.MaxContentSize)
	assert.False(t, client.config.EnableHTTP2)
	assert.Equal(t, "http://127.0.0.1:8080", client.config.Proxy)
}

func TestHTTPClientBuilder_DefaultValues(t *testing.T) {
	client, err := NewHTTPClientBuilder(zerolog.Nop()).Build()
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, client.config.Timeout)
	assert.Equal(t, config.DefaultFetcherUserAgent, client.config.UserAgent)
	assert.Equal(t, config.DefaultFetcherMaxContentSize, client.config.MaxContentSize)
	assert.True(t, client.config.EnableHTTP2)
}

func TestHTTPClientBuilder_InvalidSettings(t *testing.T) {
	tests := []struct {
		name    string
		builder *HTTPClientBuilder
	}{
		{name: "zero timeout", builder: NewHTTPClientBuilder(zerolog.Nop()).WithTimeout(0)},
		{name: "proxy without host", builder: NewHTTPClientBuilder(zerolog.Nop()).WithProxy("not a proxy")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			require.Error(t, err)
			assert.True(t, errors.Is(err, errorwrapper.ErrInvalidInput))
		})
	}
}

func TestConfigFromFetcher(t *testing.T) {
	fc := config.NewDefaultFetcherConfig()
	fc.TimeoutSecs = 3
	fc.UserAgent = "agent/1.0"
	fc.MaxContentSize = 0
	fc.EnableHTTP2 = false
	fc.CustomHeaders = map[string]string{"X-Scan": "1"}

	cfg := ConfigFromFetcher(fc)

	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, "agent/1.0", cfg.UserAgent)
	assert.Equal(t, 0, cfg.MaxContentSize)
	assert.False(t, cfg.EnableHTTP2)
	assert.Equal(t, "1", cfg.CustomHeaders["X-Scan"])
	assert.NotEmpty(t, cfg.CustomHeaders["Accept-Language"])
}
