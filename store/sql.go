// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/pollbot/db"
)

// Ensure SQLStore implements the interface.
var _ KeyValueStore = (*SQLStore)(nil)

type queries struct {
	get    string
	set    string
	exists string
	incr   string
}

var sqliteQueries = queries{
	get: `SELECT value FROM kv_store WHERE key = ?`,
	set: `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`,
	exists: `SELECT EXISTS(SELECT 1 FROM kv_store WHERE key = ?)`,
	incr: `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, '0', CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE
		SET value = CAST(CAST(kv_store.value AS INTEGER) + 1 AS TEXT), updated_at = CURRENT_TIMESTAMP
		RETURNING CAST(value AS INTEGER)
	`,
}

var postgresQueries = queries{
	get: `SELECT value FROM kv_store WHERE key = $1`,
	set: `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`,
	exists: `SELECT EXISTS(SELECT 1 FROM kv_store WHERE key = $1)`,
	incr: `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, '0', NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = (kv_store.value::BIGINT + 1)::TEXT, updated_at = NOW()
		RETURNING value::BIGINT
	`,
}

// SQLStore keeps every key in the kv_store table.
// Increment is a single upsert statement, so concurrent callers never
// observe the same value.
type SQLStore struct {
	db *sql.DB
	q  queries
}

// NewSQLStore wraps an open connection. dbType selects the SQL dialect.
func NewSQLStore(conn *sql.DB, dbType string) (*SQLStore, error) {
	s := &SQLStore{db: conn}
	switch dbType {
	case db.TypeSQLite:
		s.q = sqliteQueries
	case db.TypePostgres:
		s.q = postgresQueries
	default:
		return nil, fmt.Errorf("%w: %q", db.ErrUnsupportedType, dbType)
	}
	return s, nil
}

func (s *SQLStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, s.q.get, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get %q: %w", key, err)
	}
	return value, nil
}

func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	if _, err := s.db.ExecContext(ctx, s.q.set, key, value); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Exists(ctx context.Context, key string) (bool, error) {
	var exists bool
	if err := s.db.QueryRowContext(ctx, s.q.exists, key).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists %q: %w", key, err)
	}
	return exists, nil
}

func (s *SQLStore) Increment(ctx context.Context, key string) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, s.q.incr, key).Scan(&n); err != nil {
		return 0, fmt.Errorf("increment %q: %w", key, err)
	}
	return n, nil
}
