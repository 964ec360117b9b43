package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

// Document is a store document; "_type" is required and "_id" is generated when absent
type Document map[string]any

// CreateResult is returned after a successful create mutation
type CreateResult struct {
	ID            string `json:"id"`
	TransactionID string `json:"transactionId"`
}

// WriteClient is a privileged client carrying a write token.
// Reads through it see draft content when a perspective asks for it.
type WriteClient struct {
	*Client
}

// NewWriteClient creates a privileged client. An empty token yields a client
// whose writes fail with ErrNoWriteToken.
func NewWriteClient(cfg Config, token string, opts ...Option) *WriteClient {
	c := NewClient(cfg, opts...)
	c.token = token
	return &WriteClient{Client: c}
}

type mutateRequest struct {
	Mutations []map[string]Document `json:"mutations"`
}

type mutateResponse struct {
	TransactionID string `json:"transactionId"`
	Results       []struct {
		ID        string `json:"id"`
		Operation string `json:"operation"`
	} `json:"results"`
}

// Create stores a new document and returns its id
func (w *WriteClient) Create(ctx context.Context, doc Document) (CreateResult, error) {
	if w.token == "" {
		return CreateResult{}, ErrNoWriteToken
	}
	if _, ok := doc["_type"].(string); !ok {
		return CreateResult{}, fmt.Errorf("%w: document _type is required", ErrWriteRejected)
	}
	if id, _ := doc["_id"].(string); id == "" {
		doc["_id"] = uuid.New().String()
	}

	payload, err := json.Marshal(mutateRequest{
		Mutations: []map[string]Document{{"create": doc}},
	})
	if err != nil {
		return CreateResult{}, fmt.Errorf("failed to marshal mutation: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v%s/data/mutate/%s?returnIds=true",
		w.baseURL, w.config.APIVersion, url.PathEscape(w.config.Dataset))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return CreateResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	body, status, err := w.do(req)
	if err != nil {
		return CreateResult{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	switch {
	case status >= 500:
		return CreateResult{}, fmt.Errorf("%w: HTTP %d: %s", ErrStoreUnavailable, status, describeError(body))
	case status >= 400:
		return CreateResult{}, fmt.Errorf("%w: HTTP %d: %s", ErrWriteRejected, status, describeError(body))
	}

	var resp mutateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return CreateResult{}, fmt.Errorf("%w: failed to decode response: %v", ErrStoreUnavailable, err)
	}

	result := CreateResult{TransactionID: resp.TransactionID}
	if len(resp.Results) > 0 {
		result.ID = resp.Results[0].ID
	}
	if result.ID == "" {
		result.ID, _ = doc["_id"].(string)
	}

	return result, nil
}
