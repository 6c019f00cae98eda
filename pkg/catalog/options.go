package catalog

import (
	"net/http"

	"github.com/devnullvoid/shoptui/pkg/catalog/interfaces"
)

// ClientOptions holds optional dependencies for the catalog client.
type ClientOptions struct {
	Logger     interfaces.Logger
	HTTPClient *http.Client
	UserAgent  string
}

// ClientOption is a function that configures ClientOptions.
type ClientOption func(*ClientOptions)

// WithLogger sets a custom logger for the client.
func WithLogger(logger interfaces.Logger) ClientOption {
	return func(opts *ClientOptions) {
		opts.Logger = logger
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(opts *ClientOptions) {
		opts.HTTPClient = client
	}
}

// WithUserAgent sets the User-Agent header sent with each fetch.
func WithUserAgent(userAgent string) ClientOption {
	return func(opts *ClientOptions) {
		opts.UserAgent = userAgent
	}
}

// defaultOptions returns ClientOptions with sensible defaults.
// The HTTP client has no Timeout; only the transport bounds a fetch.
func defaultOptions() *ClientOptions {
	return &ClientOptions{
		Logger:     &interfaces.NoOpLogger{},
		HTTPClient: &http.Client{},
		UserAgent:  "shoptui",
	}
}
