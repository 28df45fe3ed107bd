// Package fred is a client for the St. Louis Fed FRED web API.
//
// All requests are authenticated with an API key and ask for JSON responses.
// See https://fred.stlouisfed.org/docs/api/fred/ for the upstream reference.
package fred

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

// defaultHostname is the production FRED API host.
const defaultHostname = "https://api.stlouisfed.org"

// ErrNoAPIKey is returned by NewClient when no API key is supplied.
// Get a free key at https://fred.stlouisfed.org/docs/api/api_key.html
// and export it as FRED_API_KEY.
var ErrNoAPIKey = errors.New("FRED API key is not set (set FRED_API_KEY or pass --api-key)")

// APIError is a non-200 response decoded from the FRED error body.
type APIError struct {
	Code    int    `json:"error_code"`
	Message string `json:"error_message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("FRED API error %d: %s", e.Code, e.Message)
}

// Client talks to a FRED-compatible API service.
type Client struct {
	httpClient *http.Client
	baseURL    url.URL
	apiKey     string
	logger     *zap.Logger
}

// Option configures optional Client behavior.
type Option func(*Client)

// WithLogger attaches a zap logger; requests are logged at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient constructs a FRED API client.
//
// If httpClient or baseURL is nil, defaults are used. Pass a baseURL only if
// you are sure the address speaks the FRED API (e.g. a test server).
func NewClient(httpClient *http.Client, baseURL *url.URL, apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	if baseURL == nil {
		var err error
		if baseURL, err = url.Parse(defaultHostname); err != nil {
			return nil, err
		}
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	c := &Client{
		httpClient: httpClient,
		baseURL:    *baseURL,
		apiKey:     apiKey,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// get performs a GET against path, merging params with the key and format
// parameters every FRED call requires, and decodes the body into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) (*http.Response, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	params.Set("file_type", "json")

	route := fmt.Sprintf("%s%s?%s", &c.baseURL, path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, route, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to create a request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to send the request: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("fred request", zap.String("path", path), zap.Int("status", resp.StatusCode))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, fmt.Errorf("unable to read the response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{}
		if jsonErr := json.Unmarshal(body, apiErr); jsonErr == nil && apiErr.Message != "" {
			return resp, apiErr
		}
		return resp, &APIError{Code: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return resp, fmt.Errorf("unable to parse the response body: %w", err)
	}
	return resp, nil
}
