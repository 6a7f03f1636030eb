package httpclient

import "fmt"

// NetworkError means no response was received for URL. Err is the transport
// failure (DNS, refused connection, TLS, timeout or cancellation).
type NetworkError struct {
	URL     string
	Message string
	Err     error
}

func NewNetworkError(url, message string, err error) error {
	return &NetworkError{URL: url, Message: message, Err: err}
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Message, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError is a response with a non-2xx status. Page fetches treat such a
// response as data; webhook delivery reports it as a failure.
type HTTPError struct {
	URL        string
	StatusCode int
	Body       string
}

func NewHTTPErrorWithURL(statusCode int, body string, url string) error {
	return &HTTPError{URL: url, StatusCode: statusCode, Body: body}
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s returned status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s returned status %d: %s", e.URL, e.StatusCode, e.Body)
}
