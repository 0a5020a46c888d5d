package main

import (
	"context"
	"fmt"

	"github.com/garrettladley/habitreset/internal/config"
	"github.com/garrettladley/habitreset/internal/paths"
	"github.com/garrettladley/habitreset/internal/postgres"
	"github.com/garrettladley/habitreset/internal/redis"
	"github.com/garrettladley/habitreset/internal/storage"
)

func openBackend(ctx context.Context, cfg config.Config) (storage.Backend, error) {
	switch cfg.Storage {
	case storage.KindMemory:
		return storage.NewMemoryBackend(), nil
	case storage.KindFile:
		return openFile(cfg)
	case storage.KindSQLite:
		return openSQLite(ctx, cfg)
	case storage.KindRedis:
		return openRedis(ctx, cfg)
	case storage.KindPostgres:
		return openPostgres(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported storage backend: %q", cfg.Storage)
	}
}

func openFile(cfg config.Config) (storage.Backend, error) {
	dir, err := paths.EnsureDir(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	return storage.NewFileBackend(dir)
}

func openSQLite(ctx context.Context, cfg config.Config) (storage.Backend, error) {
	if _, err := paths.EnsureDir(cfg.DataDir); err != nil {
		return nil, err
	}
	dbPath, err := paths.DB(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	backend, err := storage.OpenSQLite(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return backend, nil
}

func openRedis(ctx context.Context, cfg config.Config) (storage.Backend, error) {
	client, err := redis.New(ctx, redis.Config{URL: cfg.Redis.URL})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return storage.NewRedisBackend(storage.RedisConfig{Client: client}), nil
}

func openPostgres(ctx context.Context, cfg config.Config) (storage.Backend, error) {
	pool, err := postgres.New(ctx, postgres.Config{URL: cfg.Database.URL})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return storage.NewPostgresBackend(storage.PostgresConfig{Pool: pool}), nil
}
