package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrNotFound = errors.New("key not found")

// Store is a single-namespace byte store. Set overwrites any prior value.
type Store interface {
	// Get returns ErrNotFound if the key has never been written or was deleted.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type Backend interface {
	Store

	Close() error

	Ping(ctx context.Context) error
}

type Kind string

const (
	KindFile     Kind = "file"
	KindSQLite   Kind = "sqlite"
	KindRedis    Kind = "redis"
	KindPostgres Kind = "postgres"
	KindMemory   Kind = "memory"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(s)) {
	case KindFile:
		return KindFile, nil
	case KindSQLite:
		return KindSQLite, nil
	case KindRedis:
		return KindRedis, nil
	case KindPostgres:
		return KindPostgres, nil
	case KindMemory:
		return KindMemory, nil
	default:
		return "", fmt.Errorf("invalid storage backend: %q (valid: file, sqlite, redis, postgres, memory)", s)
	}
}

func (k Kind) String() string {
	return string(k)
}
