package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
)

func exercise(t *testing.T, c Cache) {
	t.Helper()
	ctx := context.Background()

	if err := c.Set(ctx, "home:de", []byte("home"), []string{"home", "home-de"}, time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := c.Set(ctx, "services:de", []byte("services"), []string{"services"}, time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := c.Get(ctx, "home:de")
	if err != nil || string(got) != "home" {
		t.Fatalf("expected cached home page, got %q (%v)", got, err)
	}

	removed, err := c.InvalidateTags(ctx, "home-de")
	if err != nil {
		t.Fatalf("InvalidateTags failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("expected 1 removed entry, got %d", removed)
	}

	if _, err := c.Get(ctx, "home:de"); !errors.Is(err, ErrMiss) {
		t.Errorf("expected miss after invalidation, got %v", err)
	}
	if _, err := c.Get(ctx, "services:de"); err != nil {
		t.Errorf("untagged entry should survive, got %v", err)
	}

	if err := c.Set(ctx, "about:de", []byte("about"), nil, 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, err := c.Get(ctx, "about:de"); !errors.Is(err, ErrMiss) {
		t.Errorf("zero ttl should not store, got %v", err)
	}
}

func TestMemory(t *testing.T) {
	exercise(t, NewMemory())
}

func TestMemoryExpiry(t *testing.T) {
	m := NewMemory()
	now := time.Now()
	m.now = func() time.Time { return now }

	ctx := context.Background()
	if err := m.Set(ctx, "k", []byte("v"), []string{"t"}, time.Second); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	now = now.Add(2 * time.Second)
	if _, err := m.Get(ctx, "k"); !errors.Is(err, ErrMiss) {
		t.Errorf("expected expired entry to miss, got %v", err)
	}
	if m.Len() != 0 {
		t.Errorf("expired entry should be removed, %d left", m.Len())
	}
}

func TestRedis(t *testing.T) {
	address := os.Getenv("REDIS_ADDRESS")
	if address == "" {
		t.Skip("REDIS_ADDRESS not set, skipping")
	}

	ctx := context.Background()
	r, err := NewRedis(ctx, address, os.Getenv("REDIS_PASSWORD"), 0)
	if err != nil {
		t.Fatalf("NewRedis failed: %v", err)
	}
	defer r.Close()

	exercise(t, r.WithPrefix("test:"+uuid.NewString()+":"))
}
