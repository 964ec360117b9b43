package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Revalidation records one accepted cache revalidation
type Revalidation struct {
	ID             uuid.UUID `json:"id"`
	Tags           []string  `json:"tags"`
	Source         string    `json:"source"`
	EntriesRemoved int       `json:"entriesRemoved"`
	CreatedAt      time.Time `json:"createdAt"`
}

// NewRevalidation stamps an event with a fresh id and the current time
func NewRevalidation(tags []string, source string, removed int) *Revalidation {
	return &Revalidation{
		ID:             uuid.New(),
		Tags:           tags,
		Source:         source,
		EntriesRemoved: removed,
		CreatedAt:      time.Now().UTC(),
	}
}

// Repository defines the interface for the revalidation audit log
type Repository interface {
	RecordRevalidation(ctx context.Context, r *Revalidation) error
	// ListRevalidations returns the newest events first
	ListRevalidations(ctx context.Context, limit int) ([]*Revalidation, error)
	// PruneRevalidations deletes events older than before and returns how many were removed
	PruneRevalidations(ctx context.Context, before time.Time) (int64, error)

	// Health
	Ping(ctx context.Context) error
	Close() error
}

// Noop is the repository used when no database is configured. It records nothing.
type Noop struct{}

func (Noop) RecordRevalidation(context.Context, *Revalidation) error { return nil }

func (Noop) ListRevalidations(context.Context, int) ([]*Revalidation, error) {
	return []*Revalidation{}, nil
}

func (Noop) PruneRevalidations(context.Context, time.Time) (int64, error) { return 0, nil }

func (Noop) Ping(context.Context) error { return nil }

func (Noop) Close() error { return nil }
