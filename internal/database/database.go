// Package database selects a storage backend from a connection URL.
package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/hongminglow/newsroom-be/internal/storage"
	"github.com/hongminglow/newsroom-be/internal/storage/postgres"
	"github.com/hongminglow/newsroom-be/internal/storage/sqlite"
)

// Backend names the store implementation chosen for a URL.
type Backend string

const (
	BackendPostgres Backend = "postgres"
	BackendSQLite   Backend = "sqlite"
)

// Resolve maps a DATABASE_URL to its backend and the DSN that backend expects.
func Resolve(databaseURL string) (Backend, string, error) {
	url := strings.TrimSpace(databaseURL)
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return BackendPostgres, url, nil
	case strings.HasPrefix(url, "sqlite://"):
		path := strings.TrimPrefix(url, "sqlite://")
		if path == "" {
			return "", "", fmt.Errorf("sqlite url %q has no path", databaseURL)
		}
		return BackendSQLite, path, nil
	case strings.HasPrefix(url, "file:"):
		return BackendSQLite, url, nil
	default:
		return "", "", fmt.Errorf("unsupported database url scheme in %q", databaseURL)
	}
}

// Open connects to the store named by databaseURL and applies migrations.
func Open(ctx context.Context, databaseURL string) (storage.Store, error) {
	backend, dsn, err := Resolve(databaseURL)
	if err != nil {
		return nil, err
	}
	if backend == BackendPostgres {
		store, err := postgres.NewStore(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
	store, err := sqlite.NewStore(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return store, nil
}
