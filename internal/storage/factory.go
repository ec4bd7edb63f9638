package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/bwdtc/bridgewater-dems/internal/config"
)

// New builds the Store selected by cfg.StorageBackend. db is only required for
// the postgres backend.
func New(ctx context.Context, cfg *config.AppConfig, db *sql.DB) (Store, error) {
	switch cfg.StorageBackend {
	case "", config.BackendMemory:
		return NewMemory(), nil
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		return NewRedis(client, cfg.Redis.Prefix), nil
	case config.BackendPostgres:
		if db == nil {
			return nil, fmt.Errorf("postgres storage backend requires a database connection")
		}
		return NewPostgres(db), nil
	case config.BackendMinIO:
		s, err := NewMinIO(cfg.MinIO)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
