package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/grofast/portal-backend-go/internal/pkg/database"
	"github.com/grofast/portal-backend-go/internal/pkg/kvstore"
	"github.com/jackc/pgx/v5"
)

type kvBlobRepositoryImpl struct {
	db *database.DB
}

// NewKVBlobRepository returns a kvstore.Store backed by the kv_blobs table.
func NewKVBlobRepository(db *database.DB) kvstore.Store {
	return &kvBlobRepositoryImpl{db: db}
}

// EnsureKVSchema creates the kv_blobs table when it does not exist.
func EnsureKVSchema(ctx context.Context, db *database.DB) error {
	return WithTransaction(ctx, db, func(ctx context.Context) error {
		q := GetQuerier(ctx, db)
		if _, err := q.Exec(ctx, `
			CREATE TABLE IF NOT EXISTS kv_blobs (
				key        TEXT PRIMARY KEY,
				value      BYTEA NOT NULL,
				expires_at TIMESTAMPTZ,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`); err != nil {
			return fmt.Errorf("create kv_blobs: %w", err)
		}
		if _, err := q.Exec(ctx, `
			CREATE INDEX IF NOT EXISTS idx_kv_blobs_expires_at
			ON kv_blobs (expires_at) WHERE expires_at IS NOT NULL`); err != nil {
			return fmt.Errorf("create kv_blobs index: %w", err)
		}
		return nil
	})
}

// Get implements kvstore.Store.
func (r *kvBlobRepositoryImpl) Get(ctx context.Context, key string) ([]byte, error) {
	q := GetQuerier(ctx, r.db)

	var value []byte
	err := q.QueryRow(ctx, `
		SELECT value FROM kv_blobs
		WHERE key = $1 AND (expires_at IS NULL OR expires_at > NOW())
	`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, kvstore.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select kv blob %s: %w", key, err)
	}
	return value, nil
}

// Set implements kvstore.Store.
func (r *kvBlobRepositoryImpl) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	q := GetQuerier(ctx, r.db)

	var expiresAt *time.Time
	if ttl > 0 {
		t := time.Now().Add(ttl)
		expiresAt = &t
	}

	_, err := q.Exec(ctx, `
		INSERT INTO kv_blobs (key, value, expires_at, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at, updated_at = NOW()
	`, key, value, expiresAt)
	if err != nil {
		return fmt.Errorf("upsert kv blob %s: %w", key, err)
	}
	return nil
}

// Delete implements kvstore.Store.
func (r *kvBlobRepositoryImpl) Delete(ctx context.Context, key string) error {
	q := GetQuerier(ctx, r.db)
	if _, err := q.Exec(ctx, `DELETE FROM kv_blobs WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete kv blob %s: %w", key, err)
	}
	return nil
}

// Close is a no-op; the pool is owned by the caller.
func (r *kvBlobRepositoryImpl) Close() error { return nil }
