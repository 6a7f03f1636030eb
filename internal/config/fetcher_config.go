package config

import "time"

// FetcherConfig controls the single GET issued for every analyzed target.
type FetcherConfig struct {
	CustomHeaders      map[string]string `json:"custom_headers,omitempty" yaml:"custom_headers,omitempty"`
	EnableHTTP2        bool              `json:"enable_http2" yaml:"enable_http2"`
	InsecureSkipVerify bool              `json:"insecure_skip_verify" yaml:"insecure_skip_verify"`
	MaxContentSize     int               `json:"max_content_size,omitempty" yaml:"max_content_size,omitempty" validate:"min=0"`
	Proxy              string            `json:"proxy,omitempty" yaml:"proxy,omitempty" validate:"omitempty,url"`
	TimeoutSecs        int               `json:"timeout_secs,omitempty" yaml:"timeout_secs,omitempty" validate:"min=1"`
	UserAgent          string            `json:"user_agent,omitempty" yaml:"user_agent,omitempty" validate:"required"`
}

// NewDefaultFetcherConfig creates default fetcher configuration
func NewDefaultFetcherConfig() FetcherConfig {
	return FetcherConfig{
		CustomHeaders:      make(map[string]string),
		EnableHTTP2:        DefaultFetcherEnableHTTP2,
		InsecureSkipVerify: false,
		MaxContentSize:     DefaultFetcherMaxContentSize,
		TimeoutSecs:        DefaultFetcherTimeoutSecs,
		UserAgent:          DefaultFetcherUserAgent,
	}
}

// Timeout returns the request timeout as a duration.
func (fc FetcherConfig) Timeout() time.Duration {
	return time.Duration(fc.TimeoutSecs) * time.Second
}
