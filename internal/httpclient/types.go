package httpclient

import (
	"context"
)

// HTTPRequest represents an HTTP request. Body is kept as bytes so retries can resend it.
type HTTPRequest struct {
	URL        string
	DisplayURL string // Replaces URL in logs and errors when set, for URLs carrying credentials
	Method     string
	Headers    map[string]string
	Body       []byte
	Context    context.Context
}

// LogURL returns the URL safe to write to logs and errors.
func (r *HTTPRequest) LogURL() string {
	if r.DisplayURL != "" {
		return r.DisplayURL
	}
	return r.URL
}

// HTTPResponse represents an HTTP response
type HTTPResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}

// IsSuccess reports a 2xx status
func (r *HTTPResponse) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
