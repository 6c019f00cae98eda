// Package catalog fetches and filters a storefront product catalog.
//
// A Client issues a single GET against a configured endpoint and decodes the
// JSON array it returns into Products. SelectCategory derives the visible
// subset for a selector label without touching the network.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/devnullvoid/shoptui/pkg/catalog/interfaces"
)

var (
	// ErrUnexpectedStatus is returned when the endpoint answers with a non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrMalformedBody is returned when the body is not a JSON array of product objects.
	ErrMalformedBody = errors.New("malformed catalog body")
)

// Fetcher loads the full catalog. The UI depends on this rather than on Client.
type Fetcher interface {
	FetchCatalog(ctx context.Context) ([]Product, error)
}

// Client reads a product catalog from one HTTP endpoint.
type Client struct {
	httpClient *http.Client
	endpoint   string
	userAgent  string
	logger     interfaces.Logger
}

var _ Fetcher = (*Client)(nil)

// NewClient creates a catalog client for endpoint, which must be an absolute
// http or https URL.
func NewClient(endpoint string, options ...ClientOption) (*Client, error) {
	if err := ValidateEndpoint(endpoint); err != nil {
		return nil, err
	}

	opts := defaultOptions()
	for _, option := range options {
		option(opts)
	}

	return &Client{
		httpClient: opts.HTTPClient,
		endpoint:   endpoint,
		userAgent:  opts.UserAgent,
		logger:     opts.Logger,
	}, nil
}

// ValidateEndpoint reports whether endpoint is usable as a catalog URL.
func ValidateEndpoint(endpoint string) error {
	if endpoint == "" {
		return errors.New("catalog endpoint is empty")
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("invalid catalog endpoint %q: %w", endpoint, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid catalog endpoint %q: scheme must be http or https", endpoint)
	}

	if u.Host == "" {
		return fmt.Errorf("invalid catalog endpoint %q: missing host", endpoint)
	}

	return nil
}

// Endpoint returns the URL the client reads from.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// FetchCatalog performs one GET against the endpoint and decodes the body.
// It never retries.
func (c *Client) FetchCatalog(ctx context.Context) ([]Product, error) {
	requestID := uuid.NewString()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	c.logger.Debug("GET %s (request %s)", c.endpoint, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s failed: %w", requestID, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	products, err := decodeCatalog(body)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Fetched %d products (request %s)", len(products), requestID)

	return products, nil
}

// decodeCatalog parses a JSON array of product objects. A JSON null is
// rejected; an empty array is a valid, empty catalog.
func decodeCatalog(body []byte) ([]Product, error) {
	var products []Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	if products == nil {
		return nil, fmt.Errorf("%w: expected a JSON array", ErrMalformedBody)
	}

	return products, nil
}
