package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hongminglow/newsroom-be/internal/models"
	"github.com/hongminglow/newsroom-be/internal/service"
	"github.com/hongminglow/newsroom-be/internal/storage"
)

func newTestAuthService(t *testing.T) *service.AuthService {
	t.Helper()
	return service.NewAuthService(newTestStore(t), newTestTokens(), testCost)
}

func TestAuthService_Register_Success(t *testing.T) {
	svc := newTestAuthService(t)

	res, err := svc.Register(context.Background(), "alice", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, models.RoleUser, res.Role)
	assert.NotEqual(t, "password123", res.User.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(res.User.PasswordHash), []byte("password123")))

	id, err := svc.VerifyToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, id.ID)
	assert.Equal(t, "alice", id.Username)
	assert.Equal(t, models.RoleUser, id.Role)
}

func TestAuthService_Register_ReservedName(t *testing.T) {
	svc := newTestAuthService(t)

	for _, password := range []string{"password123", "x", "admin"} {
		_, err := svc.Register(context.Background(), "admin", password)
		assert.ErrorIs(t, err, models.ErrReservedName)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "password123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "another-password")
	assert.ErrorIs(t, err, models.ErrDuplicateUser)
}

// lostRaceStore reports the username as free, then fails the insert on the
// unique index, as when another request registers the same name in between.
type lostRaceStore struct {
	storage.UserStore
	inserts int
}

func (s *lostRaceStore) FindByUsername(context.Context, string) (models.User, error) {
	return models.User{}, storage.ErrNotFound
}

func (s *lostRaceStore) CreateUser(context.Context, models.User) (models.User, error) {
	s.inserts++
	return models.User{}, storage.ErrAlreadyExists
}

func TestAuthService_Register_UniqueIndexViolationIsDuplicate(t *testing.T) {
	store := &lostRaceStore{}
	svc := service.NewAuthService(store, newTestTokens(), testCost)

	_, err := svc.Register(context.Background(), "bob", "password123")
	assert.ErrorIs(t, err, models.ErrDuplicateUser)
	assert.Equal(t, 1, store.inserts)
}

func TestAuthService_Register_ConcurrentSameUsername(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = svc.Register(ctx, "bob", "password123")
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, models.ErrDuplicateUser)
	}
	assert.Equal(t, 1, succeeded)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Register(context.Background(), "  ", "password123")
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.Register(context.Background(), "alice", "")
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestAuthService_Login(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "password123")
	require.NoError(t, err)

	res, err := svc.Login(ctx, "alice", "password123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, res.Role)

	id, err := svc.VerifyToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.Role, id.Role)
}

func TestAuthService_Login_InvalidCredentialsAreIndistinguishable(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "password123")
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, "alice", "wrong-password")
	_, unknownUser := svc.Login(ctx, "nobody", "password123")

	assert.ErrorIs(t, wrongPassword, models.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, models.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestAuthService_EnsureSuperAdmin(t *testing.T) {
	store := newTestStore(t)
	svc := service.NewAuthService(store, newTestTokens(), testCost)
	ctx := context.Background()

	created, err := svc.EnsureSuperAdmin(ctx, "s3cret-admin")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureSuperAdmin(ctx, "different")
	require.NoError(t, err)
	assert.False(t, created)

	res, err := svc.Login(ctx, "admin", "s3cret-admin")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, res.Role)

	_, err = svc.EnsureSuperAdmin(ctx, "")
	assert.ErrorIs(t, err, models.ErrValidation)
}
