package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/wordlookup/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors, prefixed with the
// key they concern.
// context.DeadlineExceeded and context.Canceled are NOT mapped, they pass through.
func MapError(err error, key string) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("key %s: %w", key, err)
	}

	// pgx.ErrNoRows → domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("key %s: %w", key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23502", // not_null_violation
			"23514", // check_violation
			"22001": // string_data_right_truncation
			return fmt.Errorf("key %s: %w", key, domain.ErrValidation)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("key %s: %w", key, err)
}
