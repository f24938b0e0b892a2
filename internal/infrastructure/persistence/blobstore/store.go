// Package blobstore is the durable-storage boundary: an opaque
// key-value store of JSON blobs. The engine only defines what is stored
// under which key and when; how the bytes are kept is a backend choice.
package blobstore

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrNotFound is returned by Get when the key has never been written.
// Callers treat it as "start from empty", not as a failure.
var ErrNotFound = errors.New("blob not found")

// Store reads and writes JSON blobs by key
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
}

// Config selects and parameterizes a storage backend
type Config struct {
	Backend    string // file, sqlite, or redis
	Dir        string // file backend: data directory
	SQLitePath string // sqlite backend: database file
	Redis      RedisConfig
}

// Open creates the configured store backend
func Open(cfg Config, log *zap.Logger) (Store, error) {
	switch cfg.Backend {
	case "file", "":
		return NewFileStore(cfg.Dir)
	case "sqlite":
		return NewSQLiteStore(cfg.SQLitePath)
	case "redis":
		return NewRedisStore(cfg.Redis, log)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
