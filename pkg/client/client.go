package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client is a Go SDK for the garden site content API
type Client struct {
	baseURL    string
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

// NewClient creates a new content API client
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError is returned for any non-2xx response
type APIError struct {
	StatusCode int
	Message    string
	Details    []FieldError
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// FieldError names one rejected contact form field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ContactRequest is the contact form payload
type ContactRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Service       string `json:"service,omitempty"`
	Message       string `json:"message"`
	ContactMethod string `json:"contactMethod,omitempty"`
	Locale        string `json:"locale,omitempty"`
}

// RevalidateResult is the webhook acknowledgement
type RevalidateResult struct {
	Revalidated bool     `json:"revalidated"`
	Tag         string   `json:"tag,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Now         int64    `json:"now"`
}

// Revalidation is one audit log entry
type Revalidation struct {
	ID             string    `json:"id"`
	Tags           []string  `json:"tags"`
	Source         string    `json:"source"`
	EntriesRemoved int       `json:"entriesRemoved"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Page is an assembled page as returned by the API
type Page struct {
	Data   json.RawMessage
	Cached bool
}

// SubmitContact sends the contact form and returns the created submission id.
// Validation failures come back as *APIError with Details set.
func (c *Client) SubmitContact(ctx context.Context, req ContactRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, _, err := c.doRequest(ctx, http.MethodPost, "/api/contact", bytes.NewReader(body))
	if err != nil {
		return "", err
	}

	var result struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	if err := json.Unmarshal(resp, &result); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return result.ID, nil
}

// Revalidate triggers cache invalidation for tag, or the server's default tags when tag is empty
func (c *Client) Revalidate(ctx context.Context, secret, tag string) (*RevalidateResult, error) {
	q := url.Values{"secret": {secret}}
	if tag != "" {
		q.Set("tag", tag)
	}

	resp, _, err := c.doRequest(ctx, http.MethodPost, "/api/revalidate?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var result RevalidateResult
	if err := json.Unmarshal(resp, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &result, nil
}

// RevalidationHistory lists recent revalidations, newest first
func (c *Client) RevalidationHistory(ctx context.Context, secret string, limit int) ([]Revalidation, error) {
	q := url.Values{"secret": {secret}}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	resp, _, err := c.doRequest(ctx, http.MethodGet, "/api/revalidate/history?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var result struct {
		Success bool `json:"success"`
		Data    struct {
			Events []Revalidation `json:"events"`
			Total  int            `json:"total"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return result.Data.Events, nil
}

// Page fetches an assembled page. Detail pages are named "services/<slug>" or "projects/<slug>".
func (c *Client) Page(ctx context.Context, name, locale string) (*Page, error) {
	path := "/api/pages/" + name
	if locale != "" {
		path += "?locale=" + url.QueryEscape(locale)
	}

	resp, header, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var result struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(resp, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &Page{Data: result.Data, Cached: header.Get("X-Cache") == "HIT"}, nil
}

// Health checks if the service is healthy
func (c *Client) Health(ctx context.Context) error {
	_, _, err := c.doRequest(ctx, http.MethodGet, "/health", nil)
	return err
}

// doRequest performs an HTTP request
func (c *Client) doRequest(ctx context.Context, method, path string, body io.Reader) ([]byte, http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, nil, parseError(resp.StatusCode, respBody)
	}

	return respBody, resp.Header, nil
}

// parseError understands the three error shapes the API emits
func parseError(status int, body []byte) error {
	var shape struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
		Details []FieldError    `json:"details"`
	}
	apiErr := &APIError{StatusCode: status, Message: string(body)}
	if err := json.Unmarshal(body, &shape); err != nil {
		return apiErr
	}

	var envelope struct {
		Message string `json:"message"`
	}
	var plain string
	switch {
	case shape.Message != "":
		apiErr.Message = shape.Message
	case json.Unmarshal(shape.Error, &plain) == nil:
		apiErr.Message = plain
	case json.Unmarshal(shape.Error, &envelope) == nil && envelope.Message != "":
		apiErr.Message = envelope.Message
	}
	apiErr.Details = shape.Details
	return apiErr
}
