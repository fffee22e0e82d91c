package tenor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Client represents a Tenor API client. It holds no mutable state and is safe
// for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	clientKey  string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new Tenor client
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: API key is required", ErrInvalidConfig)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	baseURL := strings.TrimRight(o.baseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("%w: invalid base URL: %w", ErrInvalidConfig, err)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: o.timeout}
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		clientKey:  o.clientKey,
		userAgent:  o.userAgent,
		httpClient: httpClient,
		logger:     o.logger,
	}, nil
}

// requestURL builds the full URL for an endpoint
func (c *Client) requestURL(endpoint Endpoint, params url.Values) string {
	u := c.baseURL + "/" + endpoint.Path()
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

// doGet performs a single GET and returns the status and full body
func (c *Client) doGet(ctx context.Context, endpoint Endpoint, params url.Values) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(endpoint, params), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug().
		Str("endpoint", endpoint.String()).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Dur("duration", time.Since(start)).
		Msg("Tenor API request")

	return resp, body, nil
}

// fetch issues one GET against endpoint and decodes the body into T.
//
// An error envelope in the body takes precedence over the HTTP status and is
// returned as *APIError. A non-2xx status without an envelope is returned as
// *HTTPError. The success shape is not validated beyond JSON decoding.
func fetch[T any](ctx context.Context, c *Client, endpoint Endpoint, params url.Values) (*T, error) {
	if !endpoint.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEndpoint, endpoint)
	}

	resp, body, err := c.doGet(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	if apiErr := parseAPIError(body); apiErr != nil {
		return nil, apiErr
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
			Body:       string(body),
		}
	}

	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w from %s: %w", ErrDecode, endpoint, err)
	}

	return &out, nil
}
