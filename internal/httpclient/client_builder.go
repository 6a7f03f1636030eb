package httpclient

import (
	"time"

	"github.com/rs/zerolog"
)

// HTTPClientBuilder collects settings on top of DefaultHTTPClientConfig.
// Validation happens in Build.
type HTTPClientBuilder struct {
	cfg    HTTPClientConfig
	logger zerolog.Logger
}

func NewHTTPClientBuilder(logger zerolog.Logger) *HTTPClientBuilder {
	return &HTTPClientBuilder{cfg: DefaultHTTPClientConfig(), logger: logger}
}

func (b *HTTPClientBuilder) WithConfig(cfg HTTPClientConfig) *HTTPClientBuilder {
	b.cfg = cfg
	return b
}

func (b *HTTPClientBuilder) WithTimeout(d time.Duration) *HTTPClientBuilder {
	b.cfg.Timeout = d
	return b
}

func (b *HTTPClientBuilder) WithInsecureSkipVerify(skip bool) *HTTPClientBuilder {
	b.cfg.InsecureSkipVerify = skip
	return b
}

func (b *HTTPClientBuilder) WithUserAgent(ua string) *HTTPClientBuilder {
	b.cfg.UserAgent = ua
	return b
}

// WithProxy sends all requests through the given proxy URL.
func (b *HTTPClientBuilder) WithProxy(proxyURL string) *HTTPClientBuilder {
	b.cfg.Proxy = proxyURL
	return b
}

// WithHeader adds a header to every request. Later calls for the same key win.
func (b *HTTPClientBuilder) WithHeader(key, value string) *HTTPClientBuilder {
	if b.cfg.CustomHeaders == nil {
		b.cfg.CustomHeaders = map[string]string{}
	}
	b.cfg.CustomHeaders[key] = value
	return b
}

// WithMaxContentSize caps response bodies at n bytes. Zero disables the cap.
func (b *HTTPClientBuilder) WithMaxContentSize(n int) *HTTPClientBuilder {
	b.cfg.MaxContentSize = n
	return b
}

func (b *HTTPClientBuilder) WithHTTP2(enabled bool) *HTTPClientBuilder {
	b.cfg.EnableHTTP2 = enabled
	return b
}

func (b *HTTPClientBuilder) Build() (*HTTPClient, error) {
	return NewHTTPClient(b.cfg, b.logger)
}
