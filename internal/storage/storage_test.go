package storage

import (
	"context"
	"io/fs"
	"os"
	"testing"
	"testing/fstest"
	"time"
)

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(Migrations(), "*.sql")
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("expected embedded migrations")
	}
	if files[0] != "001_revalidations.sql" {
		t.Errorf("unexpected first migration %q", files[0])
	}
}

func TestPendingMigrations(t *testing.T) {
	fsys := fstest.MapFS{
		"002_b.sql": {Data: []byte("SELECT 2")},
		"001_a.sql": {Data: []byte("SELECT 1")},
		"003_c.sql": {Data: []byte("SELECT 3")},
		"README.md": {Data: []byte("notes")},
		"sub/x.sql": {Data: []byte("SELECT 0")},
	}

	todo, err := pendingMigrations(fsys, []string{"002_b.sql"})
	if err != nil {
		t.Fatalf("pendingMigrations failed: %v", err)
	}
	if len(todo) != 2 || todo[0] != "001_a.sql" || todo[1] != "003_c.sql" {
		t.Errorf("unexpected pending migrations: %v", todo)
	}
}

func TestNoop(t *testing.T) {
	var repo Repository = Noop{}
	ctx := context.Background()

	if err := repo.RecordRevalidation(ctx, NewRevalidation([]string{"home"}, "test", 1)); err != nil {
		t.Fatalf("RecordRevalidation failed: %v", err)
	}
	events, err := repo.ListRevalidations(ctx, 10)
	if err != nil || events == nil || len(events) != 0 {
		t.Errorf("expected empty history, got %v (%v)", events, err)
	}
}

func TestPostgresRepository(t *testing.T) {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		t.Skip("DATABASE_DSN not set, skipping")
	}

	ctx := context.Background()
	repo, err := NewPostgresRepository(ctx, PostgresConfig{DSN: dsn})
	if err != nil {
		t.Fatalf("NewPostgresRepository failed: %v", err)
	}
	defer repo.Close()

	// Second run must find nothing to do
	for i := 0; i < 2; i++ {
		if err := repo.Migrate(ctx); err != nil {
			t.Fatalf("Migrate run %d failed: %v", i+1, err)
		}
	}

	old := NewRevalidation([]string{"home", "home-de"}, "test", 2)
	old.CreatedAt = time.Now().Add(-48 * time.Hour).UTC()
	fresh := NewRevalidation([]string{"services"}, "test", 0)

	for _, rv := range []*Revalidation{old, fresh} {
		if err := repo.RecordRevalidation(ctx, rv); err != nil {
			t.Fatalf("RecordRevalidation failed: %v", err)
		}
	}

	events, err := repo.ListRevalidations(ctx, 100)
	if err != nil {
		t.Fatalf("ListRevalidations failed: %v", err)
	}
	if len(events) < 2 || events[0].CreatedAt.Before(events[1].CreatedAt) {
		t.Errorf("expected newest first, got %d events", len(events))
	}

	pruned, err := repo.PruneRevalidations(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("PruneRevalidations failed: %v", err)
	}
	if pruned < 1 {
		t.Errorf("expected at least one pruned event, got %d", pruned)
	}
}
