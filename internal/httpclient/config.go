package httpclient

import (
	"time"

	"github.com/striker-satyam/gatewaychk/internal/config"
)

// HTTPClientConfig holds configuration for HTTP clients
type HTTPClientConfig struct {
	Timeout               time.Duration     // Request timeout
	UserAgent             string            // User-Agent sent with every request
	InsecureSkipVerify    bool              // Skip TLS verification
	Proxy                 string            // Proxy URL
	CustomHeaders         map[string]string // Headers added to all requests
	MaxContentSize        int               // Response body cap in bytes, 0 for no limit
	MaxIdleConns          int
	MaxIdleConnsPerHost   int
	IdleConnTimeout       time.Duration
	TLSHandshakeTimeout   time.Duration
	ExpectContinueTimeout time.Duration
	DialTimeout           time.Duration
	KeepAlive             time.Duration
	EnableHTTP2           bool
}

// DefaultHTTPClientConfig returns the default HTTP client configuration
func DefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		Timeout:               time.Duration(config.DefaultFetcherTimeoutSecs) * time.Second,
		UserAgent:             config.DefaultFetcherUserAgent,
		MaxContentSize:        config.DefaultFetcherMaxContentSize,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		DialTimeout:           10 * time.Second,
		KeepAlive:             30 * time.Second,
		EnableHTTP2:           config.DefaultFetcherEnableHTTP2,
		CustomHeaders: map[string]string{
			"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
			"Accept-Language": "en-US,en;q=0.9",
		},
	}
}

// ConfigFromFetcher maps the fetcher section of the global configuration onto
// client settings, keeping the defaults for everything it does not cover.
func ConfigFromFetcher(fc config.FetcherConfig) HTTPClientConfig {
	cfg := DefaultHTTPClientConfig()
	if fc.TimeoutSecs > 0 {
		cfg.Timeout = fc.Timeout()
	}
	if fc.UserAgent != "" {
		cfg.UserAgent = fc.UserAgent
	}
	cfg.InsecureSkipVerify = fc.InsecureSkipVerify
	cfg.Proxy = fc.Proxy
	cfg.MaxContentSize = fc.MaxContentSize
	cfg.EnableHTTP2 = fc.EnableHTTP2
	for k, v := range fc.CustomHeaders {
		cfg.CustomHeaders[k] = v
	}
	return cfg
}
