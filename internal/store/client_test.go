package store

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{ProjectID: "p", Dataset: "production", APIVersion: "2026-02-11"}, WithBaseURL(srv.URL))
}

func TestFetchBindsParamsByName(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2026-02-11/data/query/production" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("$slug"); got != `"garden-care\" || true"` {
			t.Errorf("unexpected slug param: %s", got)
		}
		if strings.Contains(r.URL.Query().Get("query"), "garden-care") {
			t.Error("slug must not be interpolated into the query")
		}
		if r.Header.Get("Cache-Control") != "no-store" {
			t.Errorf("expected no-store cache hint, got %q", r.Header.Get("Cache-Control"))
		}
		w.Write([]byte(`{"ms":3,"result":{"_id":"svc-1"}}`))
	})

	raw, err := client.Fetch(context.Background(), `*[slug.current == $slug][0]`,
		map[string]any{"slug": `garden-care" || true`}, FetchOptions{Cache: NoStore})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	var doc struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if doc.ID != "svc-1" {
		t.Errorf("expected svc-1, got %s", doc.ID)
	}
}

func TestFetchStoreUnavailable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error":{"description":"upstream down"}}`))
	})

	_, err := client.Fetch(context.Background(), `*[_type == "stats"]`, nil, FetchOptions{})
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
	if !strings.Contains(err.Error(), "upstream down") {
		t.Errorf("expected store description in error, got %v", err)
	}
}

func TestFetchMalformedEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	if _, err := client.Fetch(context.Background(), `*`, nil, FetchOptions{}); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestCreate(t *testing.T) {
	var received mutateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v2026-02-11/data/mutate/production" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer secret-token" {
			t.Errorf("missing bearer token")
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &received); err != nil {
			t.Errorf("bad body: %v", err)
		}
		w.Write([]byte(`{"transactionId":"tx1","results":[{"id":"doc-42","operation":"create"}]}`))
	}))
	defer srv.Close()

	wc := NewWriteClient(Config{ProjectID: "p", Dataset: "production", APIVersion: "2026-02-11"}, "secret-token", WithBaseURL(srv.URL))
	res, err := wc.Create(context.Background(), Document{"_type": "contactSubmission", "name": "Jane"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if res.ID != "doc-42" || res.TransactionID != "tx1" {
		t.Errorf("unexpected result: %+v", res)
	}
	if len(received.Mutations) != 1 {
		t.Fatalf("expected one mutation, got %d", len(received.Mutations))
	}
	created := received.Mutations[0]["create"]
	if created["_type"] != "contactSubmission" || created["_id"] == "" {
		t.Errorf("unexpected created document: %v", created)
	}
}

func TestCreateRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"description":"permission denied"}}`))
	}))
	defer srv.Close()

	wc := NewWriteClient(Config{ProjectID: "p", Dataset: "production", APIVersion: "2026-02-11"}, "t", WithBaseURL(srv.URL))
	if _, err := wc.Create(context.Background(), Document{"_type": "contactSubmission"}); !errors.Is(err, ErrWriteRejected) {
		t.Fatalf("expected ErrWriteRejected, got %v", err)
	}
}

func TestCreateWithoutToken(t *testing.T) {
	wc := NewWriteClient(Config{ProjectID: "p", Dataset: "production", APIVersion: "2026-02-11"}, "")
	if _, err := wc.Create(context.Background(), Document{"_type": "contactSubmission"}); !errors.Is(err, ErrNoWriteToken) {
		t.Fatalf("expected ErrNoWriteToken, got %v", err)
	}
}
