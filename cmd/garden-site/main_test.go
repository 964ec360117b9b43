package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/content"
)

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"serve", "fetch", "revalidate"} {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("expected %s command, got %v (%v)", name, cmd, err)
		}
	}
}

func TestFetchUnknownCollection(t *testing.T) {
	t.Setenv("SANITY_PROJECT_ID", "test")
	timeout = time.Second

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	err := runFetch(cmd, []string{"gallery"})
	if !errors.Is(err, content.ErrUnknownCollection) {
		t.Errorf("expected ErrUnknownCollection, got %v", err)
	}
}

func TestRevalidateCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Query().Get("secret") != "s3cret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Invalid secret token"}`))
			return
		}
		w.Write([]byte(`{"revalidated":true,"tags":["home","home-en","home-de"],"now":1700000000000}`))
	}))
	defer srv.Close()

	revalidateURL = srv.URL
	revalidateTag = ""
	timeout = 5 * time.Second
	defer func() { revalidateURL, revalidateSecret = "", "" }()

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	cmd.SetOut(&out)

	revalidateSecret = "s3cret"
	if err := runRevalidate(cmd, nil); err != nil {
		t.Fatalf("runRevalidate failed: %v", err)
	}
	if !strings.Contains(out.String(), "home-de") {
		t.Errorf("unexpected output: %q", out.String())
	}

	revalidateSecret = "wrong"
	if err := runRevalidate(cmd, nil); err == nil || !strings.Contains(err.Error(), "Invalid secret token") {
		t.Errorf("expected auth failure, got %v", err)
	}
}
