package httpclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"io"
	"net"
	"net/http"
	"net/url"
	"sync"

	"github.com/rs/zerolog"
	"github.com/striker-satyam/gatewaychk/internal/common/errorwrapper"
	"golang.org/x/net/html/charset"
	"golang.org/x/net/http2"
)

// HTTPClient wraps net/http.Client with the request defaults of this tool.
// It is safe for concurrent use.
type HTTPClient struct {
	client     *http.Client
	config     HTTPClientConfig
	logger     zerolog.Logger
	bufferPool sync.Pool
}

// Request is a single outgoing request.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    io.Reader
}

// Response carries everything read from the server. Body holds the raw bytes,
// possibly cut at MaxContentSize.
type Response struct {
	URL        string
	StatusCode int
	Headers    http.Header
	Body       []byte
	Truncated  bool
}

// Text decodes the body to UTF-8 using the charset announced in Content-Type,
// falling back to a sniffed encoding and finally to the raw bytes.
func (r *Response) Text() string {
	if len(r.Body) == 0 {
		return ""
	}
	reader, err := charset.NewReader(bytes.NewReader(r.Body), r.Headers.Get("Content-Type"))
	if err != nil {
		return string(r.Body)
	}
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return string(r.Body)
	}
	return string(decoded)
}

// NewHTTPClient creates a new HTTP client with the given configuration using net/http
func NewHTTPClient(config HTTPClientConfig, logger zerolog.Logger) (*HTTPClient, error) {
	if config.Timeout <= 0 {
		return nil, errorwrapper.NewValidationError("timeout", config.Timeout, "timeout must be positive")
	}

	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          config.MaxIdleConns,
		MaxIdleConnsPerHost:   config.MaxIdleConnsPerHost,
		IdleConnTimeout:       config.IdleConnTimeout,
		TLSHandshakeTimeout:   config.TLSHandshakeTimeout,
		ExpectContinueTimeout: config.ExpectContinueTimeout,
		DialContext: (&net.Dialer{
			Timeout:   config.DialTimeout,
			KeepAlive: config.KeepAlive,
		}).DialContext,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: config.InsecureSkipVerify,
		},
	}

	if config.EnableHTTP2 {
		if err := http2.ConfigureTransport(transport); err != nil {
			logger.Warn().Err(err).Msg("Failed to configure HTTP/2, falling back to HTTP/1.1")
		} else {
			logger.Debug().Msg("HTTP/2 support enabled")
		}
	}

	if config.Proxy != "" {
		proxyURL, err := url.Parse(config.Proxy)
		if err != nil || proxyURL.Host == "" {
			return nil, errorwrapper.NewValidationError("proxy", config.Proxy, "invalid proxy URL")
		}
		transport.Proxy = http.ProxyURL(proxyURL)
		logger.Info().Str("proxy", config.Proxy).Msg("HTTP client configured with proxy")
	}

	logger.Debug().
		Dur("timeout", config.Timeout).
		Bool("insecure_skip_verify", config.InsecureSkipVerify).
		Bool("http2_enabled", config.EnableHTTP2).
		Int("max_content_size", config.MaxContentSize).
		Msg("HTTP client created")

	return &HTTPClient{
		client: &http.Client{
			Transport: transport,
			Timeout:   config.Timeout,
		},
		config: config,
		logger: logger,
		bufferPool: sync.Pool{
			New: func() interface{} {
				b := make([]byte, 32*1024)
				return &b
			},
		},
	}, nil
}

// Get issues a single GET without retries. Any status code is a valid response.
func (c *HTTPClient) Get(ctx context.Context, rawURL string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, URL: rawURL})
}

// PostJSON sends payload with a JSON content type.
func (c *HTTPClient) PostJSON(ctx context.Context, rawURL string, payload []byte) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:  http.MethodPost,
		URL:     rawURL,
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    bytes.NewReader(payload),
	})
}

// Do performs req once. Errors are always *NetworkError; a response with any
// status code is returned as is.
func (c *HTTPClient) Do(ctx context.Context, req *Request) (*Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, req.Body)
	if err != nil {
		return nil, NewNetworkError(req.URL, "failed to create HTTP request", err)
	}

	// Config headers first, request headers override them.
	for key, value := range c.config.CustomHeaders {
		httpReq.Header.Set(key, value)
	}
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}
	if c.config.UserAgent != "" {
		httpReq.Header.Set("User-Agent", c.config.UserAgent)
	}
	if httpReq.Header.Get("Accept") == "" {
		httpReq.Header.Set("Accept", "*/*")
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, NewNetworkError(req.URL, "HTTP request failed", err)
	}
	defer resp.Body.Close()

	body, truncated, err := c.readBody(resp.Body)
	if err != nil {
		return nil, NewNetworkError(req.URL, "failed to read response body", err)
	}
	if truncated {
		c.logger.Warn().
			Str("url", req.URL).
			Int("max_content_size", c.config.MaxContentSize).
			Msg("Content size exceeds limit, truncating")
	}

	finalURL := req.URL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	c.logger.Debug().
		Str("url", req.URL).
		Str("final_url", finalURL).
		Int("status_code", resp.StatusCode).
		Int("content_size", len(body)).
		Msg("Request completed")

	return &Response{
		URL:        finalURL,
		StatusCode: resp.StatusCode,
		Headers:    resp.Header.Clone(),
		Body:       body,
		Truncated:  truncated,
	}, nil
}

// readBody reads at most MaxContentSize bytes and reports whether more were available.
func (c *HTTPClient) readBody(r io.Reader) ([]byte, bool, error) {
	limit := c.config.MaxContentSize
	if limit > 0 {
		r = io.LimitReader(r, int64(limit)+1)
	}

	bufPtr := c.bufferPool.Get().(*[]byte)
	defer c.bufferPool.Put(bufPtr)
	buf := bytes.NewBuffer((*bufPtr)[:0])

	if _, err := io.Copy(buf, r); err != nil {
		return nil, false, err
	}

	n := buf.Len()
	truncated := limit > 0 && n > limit
	if truncated {
		n = limit
	}
	body := make([]byte, n)
	copy(body, buf.Bytes()[:n])
	return body, truncated, nil
}
