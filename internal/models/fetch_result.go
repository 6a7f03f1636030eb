package models

import (
	"net/http"
	"strings"
)

// FetchResult is the outcome of the single GET issued for a target. It is built
// once per analysis and never modified afterwards.
type FetchResult struct {
	URL        string
	StatusCode int
	Body       string
	LowerBody  string
	Scripts    []string
	Headers    http.Header
}

// NewFetchResult builds a FetchResult, deriving the lower-cased body once.
// A nil header map is replaced by an empty one.
func NewFetchResult(url string, statusCode int, body string, scripts []string, headers http.Header) *FetchResult {
	if headers == nil {
		headers = http.Header{}
	}
	return &FetchResult{
		URL:        url,
		StatusCode: statusCode,
		Body:       body,
		LowerBody:  strings.ToLower(body),
		Scripts:    scripts,
		Headers:    headers,
	}
}
