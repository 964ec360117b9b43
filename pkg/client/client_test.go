package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSubmitContact(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/contact" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"success":true,"id":"contact-1"}`))
	}))
	defer srv.Close()

	id, err := NewClient(srv.URL).SubmitContact(context.Background(), ContactRequest{Name: "Jane"})
	if err != nil {
		t.Fatalf("SubmitContact failed: %v", err)
	}
	if id != "contact-1" {
		t.Errorf("expected contact-1, got %q", id)
	}
}

func TestSubmitContactValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Validation failed","details":[{"field":"email","message":"must be a valid email address"}]}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).SubmitContact(context.Background(), ContactRequest{})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest || apiErr.Message != "Validation failed" {
		t.Errorf("unexpected error: %+v", apiErr)
	}
	if len(apiErr.Details) != 1 || apiErr.Details[0].Field != "email" {
		t.Errorf("unexpected details: %+v", apiErr.Details)
	}
}

func TestRevalidate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("secret") != "s3cret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Invalid secret token"}`))
			return
		}
		w.Write([]byte(`{"revalidated":true,"tag":"` + r.URL.Query().Get("tag") + `","now":1700000000000}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	res, err := c.Revalidate(context.Background(), "s3cret", "home")
	if err != nil {
		t.Fatalf("Revalidate failed: %v", err)
	}
	if !res.Revalidated || res.Tag != "home" {
		t.Errorf("unexpected result: %+v", res)
	}

	_, err = c.Revalidate(context.Background(), "wrong", "home")
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnauthorized || apiErr.Message != "Invalid secret token" {
		t.Errorf("expected 401 APIError, got %v", err)
	}
}

func TestPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/pages/gallery" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"error":{"code":"not_found","message":"unknown page"}}`))
			return
		}
		if r.URL.Query().Get("locale") != "en" {
			t.Errorf("expected locale en, got %q", r.URL.Query().Get("locale"))
		}
		w.Header().Set("X-Cache", "HIT")
		w.Write([]byte(`{"success":true,"data":{"locale":"en"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	page, err := c.Page(context.Background(), "home", "en")
	if err != nil {
		t.Fatalf("Page failed: %v", err)
	}
	if !page.Cached || string(page.Data) != `{"locale":"en"}` {
		t.Errorf("unexpected page: cached=%v data=%s", page.Cached, page.Data)
	}

	_, err = c.Page(context.Background(), "gallery", "")
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "unknown page" {
		t.Errorf("expected enveloped 404, got %v", err)
	}
}
