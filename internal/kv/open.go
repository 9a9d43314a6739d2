package kv

import (
	"context"
	"fmt"
)

// Backend names accepted by Open.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendS3       = "s3"
)

// Config selects and configures a backend.
type Config struct {
	Type string // memory, sqlite, postgres, redis, s3
	Path string // SQLite file path
	URL  string // PostgreSQL or Redis connection URL
	S3   S3Config
}

// Open creates the backend named by cfg.Type.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Type {
	case BackendMemory:
		return NewMemory(), nil
	case BackendSQLite, "":
		if cfg.Path == "" {
			return nil, fmt.Errorf("sqlite backend needs a path")
		}
		return NewSQLite(cfg.Path)
	case BackendPostgres, "postgresql":
		if cfg.URL == "" {
			return nil, fmt.Errorf("postgres backend needs a url")
		}
		return NewPostgres(ctx, cfg.URL)
	case BackendRedis:
		if cfg.URL == "" {
			return nil, fmt.Errorf("redis backend needs a url")
		}
		return NewRedis(ctx, cfg.URL)
	case BackendS3:
		return NewS3(cfg.S3)
	}
	return nil, fmt.Errorf("unknown storage type %q (valid: memory, sqlite, postgres, redis, s3)", cfg.Type)
}
