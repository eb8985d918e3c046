// Package kv stores the client's key/value slots in PostgreSQL.
package kv

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/wordlookup/internal/adapter/postgres"
)

const table = "kv_store"

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides key/value operations backed by the kv_store table.
type Repo struct {
	q postgres.Querier
}

// New creates a new kv repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// Get returns the value stored under key. ok is false when the key is absent.
func (r *Repo) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query, args, err := builder.
		Select("value").
		From(table).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, false, postgres.MapError(err, key)
	}

	var value []byte
	if err := r.q.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, postgres.MapError(err, key)
	}
	return value, true, nil
}

// Put inserts or replaces the value stored under key.
func (r *Repo) Put(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}

	query, args, err := builder.
		Insert(table).
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return postgres.MapError(err, key)
	}

	_, err = r.q.Exec(ctx, query, args...)
	return postgres.MapError(err, key)
}

// Delete removes key. Deleting an absent key is not an error.
func (r *Repo) Delete(ctx context.Context, key string) error {
	query, args, err := builder.
		Delete(table).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, key)
	}

	_, err = r.q.Exec(ctx, query, args...)
	return postgres.MapError(err, key)
}
