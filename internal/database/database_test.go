package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		backend Backend
		dsn     string
		wantErr bool
	}{
		{name: "postgres", url: "postgres://u:p@localhost:5432/db", backend: BackendPostgres, dsn: "postgres://u:p@localhost:5432/db"},
		{name: "postgresql", url: "postgresql://localhost/db", backend: BackendPostgres, dsn: "postgresql://localhost/db"},
		{name: "sqlite path", url: "sqlite://./data/news.db", backend: BackendSQLite, dsn: "./data/news.db"},
		{name: "sqlite file uri", url: "file:news.db?cache=shared", backend: BackendSQLite, dsn: "file:news.db?cache=shared"},
		{name: "sqlite without path", url: "sqlite://", wantErr: true},
		{name: "mongodb", url: "mongodb://localhost/news", wantErr: true},
		{name: "empty", url: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend, dsn, err := Resolve(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.backend, backend)
			assert.Equal(t, tt.dsn, dsn)
		})
	}
}

func TestOpen_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "open.db")
	store, err := Open(context.Background(), "sqlite://"+path)
	require.NoError(t, err)
	defer store.Close()

	users, err := store.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}
