package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// CacheMode is the cache hint attached to a query
type CacheMode int

const (
	// NoStore always reads current published content from the origin API
	NoStore CacheMode = iota
	// Default allows the CDN host when the client is configured for it
	Default
)

// FetchOptions carries per-query hints
type FetchOptions struct {
	Cache       CacheMode
	Perspective string
}

// Config identifies a dataset in the content store
type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	APIHost    string
	UseCDN     bool
}

// Client is a read-only handle to the content store query API.
// It is safe for concurrent use and immutable after construction.
type Client struct {
	config     Config
	token      string
	baseURL    string
	cdnURL     string
	httpClient *http.Client
}

// Option configures the client
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the client timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithBaseURL overrides the API and CDN endpoints, e.g. for tests
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
		c.cdnURL = c.baseURL
	}
}

// NewClient creates a new content store client
func NewClient(cfg Config, opts ...Option) *Client {
	if cfg.APIHost == "" {
		cfg.APIHost = "api.sanity.io"
	}
	cdnHost := strings.Replace(cfg.APIHost, "api.", "apicdn.", 1)

	c := &Client{
		config:  cfg,
		baseURL: fmt.Sprintf("https://%s.%s", cfg.ProjectID, cfg.APIHost),
		cdnURL:  fmt.Sprintf("https://%s.%s", cfg.ProjectID, cdnHost),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Config returns the store identity the client was built with
func (c *Client) Config() Config {
	return c.config
}

type queryResponse struct {
	Result json.RawMessage `json:"result"`
	Ms     int             `json:"ms"`
}

// Fetch runs a query and returns the raw JSON result.
// Parameters are bound by name ($slug) and never interpolated into the query.
func (c *Client) Fetch(ctx context.Context, query string, params map[string]any, opts FetchOptions) (json.RawMessage, error) {
	values := url.Values{}
	values.Set("query", query)
	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode param %s: %w", name, err)
		}
		values.Set("$"+name, string(encoded))
	}
	if opts.Perspective != "" {
		values.Set("perspective", opts.Perspective)
	}

	base := c.baseURL
	if c.config.UseCDN && opts.Cache != NoStore && c.token == "" {
		base = c.cdnURL
	}
	endpoint := fmt.Sprintf("%s/v%s/data/query/%s?%s",
		base, c.config.APIVersion, url.PathEscape(c.config.Dataset), values.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if opts.Cache == NoStore {
		req.Header.Set("Cache-Control", "no-store")
	}

	body, status, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if status >= 300 {
		return nil, fmt.Errorf("%w: HTTP %d: %s", ErrStoreUnavailable, status, describeError(body))
	}

	var resp queryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrStoreUnavailable, err)
	}

	return resp.Result, nil
}

// HealthCheck runs a trivial count query against the dataset
func (c *Client) HealthCheck(ctx context.Context) error {
	_, err := c.Fetch(ctx, `count(*[_type == "siteFooter"])`, nil, FetchOptions{Cache: NoStore})
	return err
}

// do performs an HTTP request and returns the body and status code
func (c *Client) do(req *http.Request) ([]byte, int, error) {
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}

	return respBody, resp.StatusCode, nil
}

func describeError(body []byte) string {
	var apiErr apiErrorBody
	if err := json.Unmarshal(body, &apiErr); err == nil {
		if desc := apiErr.describe(); desc != "" {
			return desc
		}
	}
	if len(body) > 200 {
		body = body[:200]
	}
	return string(body)
}
