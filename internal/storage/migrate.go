package storage

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

const migrationsTable = `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		name VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	)`

// Migrations returns the schema migrations shipped with the binary
func Migrations() fs.FS {
	sub, err := fs.Sub(embeddedMigrations, "migrations")
	if err != nil {
		panic(err)
	}
	return sub
}

// Migrate brings the audit schema up to date
func (r *PostgresRepository) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, r.pool, Migrations())
}

// RunMigrations applies every .sql file at the root of fsys that is not yet
// recorded in schema_migrations. Each file runs in its own transaction.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, fsys fs.FS) error {
	if _, err := pool.Exec(ctx, migrationsTable); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	rows, err := pool.Query(ctx, `SELECT name FROM schema_migrations`)
	if err != nil {
		return fmt.Errorf("failed to query applied migrations: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return fmt.Errorf("failed to read applied migrations: %w", err)
	}

	todo, err := pendingMigrations(fsys, names)
	if err != nil {
		return err
	}

	for _, name := range todo {
		script, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}

		err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, string(script)); err != nil {
				return err
			}
			_, err := tx.Exec(ctx, `INSERT INTO schema_migrations (name) VALUES ($1)`, name)
			return err
		})
		if err != nil {
			return fmt.Errorf("migration %s failed: %w", name, err)
		}
		slog.Info("migration applied", "migration", name)
	}

	if len(todo) == 0 {
		slog.Debug("audit schema up to date")
	}
	return nil
}

// pendingMigrations lists the .sql files of fsys missing from applied, in name order
func pendingMigrations(fsys fs.FS, applied []string) ([]string, error) {
	files, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("failed to list migrations: %w", err)
	}

	done := make(map[string]bool, len(applied))
	for _, name := range applied {
		done[name] = true
	}

	var todo []string
	for _, f := range files {
		if name := path.Base(f); !done[name] {
			todo = append(todo, name)
		}
	}
	sort.Strings(todo)
	return todo, nil
}
