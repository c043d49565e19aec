package service_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hongminglow/newsroom-be/internal/auth"
	"github.com/hongminglow/newsroom-be/internal/storage/sqlite"
)

const testJWTSecret = "test-secret-key-for-unit-tests"

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.NewStore(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(store.Close)
	return store
}

func newTestTokens() *auth.TokenManager {
	return auth.NewTokenManager(testJWTSecret, "newsroom-test", time.Hour)
}

// bcrypt.MinCost keeps the suite fast.
const testCost = bcrypt.MinCost
