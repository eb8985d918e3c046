package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/wordlookup/internal/adapter/postgres"
	"github.com/heartmarshall/wordlookup/internal/adapter/postgres/kv"
	"github.com/heartmarshall/wordlookup/internal/adapter/sqlite"
	"github.com/heartmarshall/wordlookup/internal/config"
)

// Store is the durable key/value store behind history and theme.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// OpenStore opens the store selected by cfg.Driver and applies migrations.
func OpenStore(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		if err := postgres.Migrate(ctx, cfg.PostgresDSN); err != nil {
			return nil, fmt.Errorf("app: migrate postgres: %w", err)
		}
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("app: connect postgres: %w", err)
		}
		logger.Info("storage opened",
			slog.String("driver", cfg.Driver),
			slog.Int("max_conns", int(cfg.MaxConns)),
		)
		return &pgStore{Repo: kv.New(pool), pool: pool}, nil

	case config.DriverSQLite, "":
		path := cfg.SQLitePath
		if path == "" {
			path = config.DefaultSQLitePath()
		}
		store, err := sqlite.Open(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("app: open sqlite: %w", err)
		}
		logger.Info("storage opened",
			slog.String("driver", config.DriverSQLite),
			slog.String("path", path),
		)
		return store, nil

	default:
		return nil, fmt.Errorf("app: unknown storage driver %q", cfg.Driver)
	}
}

// pgStore adds pool lifecycle to the postgres key/value repo.
type pgStore struct {
	*kv.Repo
	pool *pgxpool.Pool
}

func (s *pgStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *pgStore) Close() error {
	s.pool.Close()
	return nil
}
