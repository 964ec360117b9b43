package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository implements Repository using PostgreSQL
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// PostgresConfig holds PostgreSQL connection configuration
type PostgresConfig struct {
	DSN         string
	MaxConns    int32
	MinConns    int32
	MaxLifetime time.Duration
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(ctx context.Context, cfg PostgresConfig) (*PostgresRepository, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}

	poolConfig.MaxConns = 5
	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolConfig.MinConns = cfg.MinConns
	}
	poolConfig.MaxConnLifetime = 30 * time.Minute
	if cfg.MaxLifetime > 0 {
		poolConfig.MaxConnLifetime = cfg.MaxLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Test connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{pool: pool}, nil
}

// Ping checks database connectivity
func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Close closes the database connection pool
func (r *PostgresRepository) Close() error {
	r.pool.Close()
	return nil
}

// RecordRevalidation stores one revalidation event
func (r *PostgresRepository) RecordRevalidation(ctx context.Context, rv *Revalidation) error {
	query := `
		INSERT INTO revalidations (id, tags, source, entries_removed, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query, rv.ID, rv.Tags, rv.Source, rv.EntriesRemoved, rv.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record revalidation: %w", err)
	}
	return nil
}

// ListRevalidations returns up to limit events, newest first
func (r *PostgresRepository) ListRevalidations(ctx context.Context, limit int) ([]*Revalidation, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, tags, source, entries_removed, created_at
		FROM revalidations
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list revalidations: %w", err)
	}
	defer rows.Close()

	events := []*Revalidation{}
	for rows.Next() {
		var rv Revalidation
		if err := rows.Scan(&rv.ID, &rv.Tags, &rv.Source, &rv.EntriesRemoved, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan revalidation: %w", err)
		}
		events = append(events, &rv)
	}

	return events, rows.Err()
}

// PruneRevalidations deletes events created before the cutoff
func (r *PostgresRepository) PruneRevalidations(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM revalidations WHERE created_at < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("failed to prune revalidations: %w", err)
	}
	return tag.RowsAffected(), nil
}
