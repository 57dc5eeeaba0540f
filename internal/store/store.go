// Package store provides PostgreSQL persistence for documents, the skill
// taxonomy and match results. Document identity is content-addressed: a
// SHA-256 hash of normalized text with a uniqueness constraint at the
// storage layer, so concurrent writers cannot race a duplicate past an
// application-level existence check.
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config holds store configuration. It is passed explicitly to Connect;
// there is no process-wide database setting.
type Config struct {
	// DatabaseURL is the PostgreSQL connection string.
	DatabaseURL string
}

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database and verifies it.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("store config: database URL is empty")
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
