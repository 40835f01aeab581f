// Package store holds the key-value contract the board snapshot is
// persisted through, and a factory for the configured backend.
package store

import (
	"context"
	"fmt"
	"io"

	"github.com/Makepad-fr/tadaboard/internal/config"
	"github.com/Makepad-fr/tadaboard/internal/store/jsonstore"
	"github.com/Makepad-fr/tadaboard/internal/store/pgstore"
	"github.com/Makepad-fr/tadaboard/internal/store/redisstore"
	"github.com/Makepad-fr/tadaboard/internal/store/sqlitestore"
)

// Store is an opaque blob store. Get reports ok=false when the key was
// never written.
type Store interface {
	Get(ctx context.Context, key string) (blob []byte, ok bool, err error)
	Put(ctx context.Context, key string, blob []byte) error
}

// Backend is a Store that holds resources.
type Backend interface {
	Store
	io.Closer
}

// Open builds the backend named by cfg.Backend.
func Open(ctx context.Context, cfg config.StoreConfig) (Backend, error) {
	var (
		b   Backend
		err error
	)
	switch cfg.Backend {
	case "", "file":
		b, err = openFile(cfg)
	case "redis":
		b, err = openRedis(ctx, cfg)
	case "sqlite":
		b, err = openSQLite(cfg)
	case "postgres":
		b, err = openPostgres(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", backendName(cfg), err)
	}
	return b, nil
}

func backendName(cfg config.StoreConfig) string {
	if cfg.Backend == "" {
		return "file"
	}
	return cfg.Backend
}

func openFile(cfg config.StoreConfig) (Backend, error) {
	s, err := jsonstore.New(cfg.Dir)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func openRedis(ctx context.Context, cfg config.StoreConfig) (Backend, error) {
	s, err := redisstore.New(ctx, redisstore.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func openSQLite(cfg config.StoreConfig) (Backend, error) {
	s, err := sqlitestore.Open(cfg.SQLite.Path)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func openPostgres(ctx context.Context, cfg config.StoreConfig) (Backend, error) {
	s, err := pgstore.Open(ctx, cfg.Postgres.DSN)
	if err != nil {
		return nil, err
	}
	return s, nil
}
