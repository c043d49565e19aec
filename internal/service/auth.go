package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/hongminglow/newsroom-be/internal/auth"
	"github.com/hongminglow/newsroom-be/internal/models"
	"github.com/hongminglow/newsroom-be/internal/storage"
)

// AuthResult is what a successful register or login hands back to the client.
type AuthResult struct {
	Token string
	Role  string
	User  models.User
}

// AuthService handles registration, login and token verification.
type AuthService struct {
	users      storage.UserStore
	tokens     *auth.TokenManager
	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(users storage.UserStore, tokens *auth.TokenManager, bcryptCost int) *AuthService {
	return &AuthService{users: users, tokens: tokens, bcryptCost: bcryptCost}
}

// Register creates a regular user account and returns a fresh token for it.
func (s *AuthService) Register(ctx context.Context, username, password string) (AuthResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return AuthResult{}, fmt.Errorf("%w: username and password are required", models.ErrValidation)
	}
	if username == models.SuperAdminUsername {
		return AuthResult{}, models.ErrReservedName
	}

	// Fast path only; the unique index on username is what actually guards
	// against concurrent registrations.
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return AuthResult{}, models.ErrDuplicateUser
	} else if !errors.Is(err, storage.ErrNotFound) {
		return AuthResult{}, fmt.Errorf("lookup user: %w", err)
	}

	user, err := s.createUser(ctx, username, password, models.RoleUser)
	if err != nil {
		return AuthResult{}, err
	}
	return s.issue(user)
}

// Login verifies credentials. Unknown users and wrong passwords yield the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (AuthResult, error) {
	user, err := s.users.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return AuthResult{}, models.ErrInvalidCredentials
		}
		return AuthResult{}, fmt.Errorf("lookup user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return AuthResult{}, models.ErrInvalidCredentials
	}
	return s.issue(user)
}

// VerifyToken validates a raw bearer token.
func (s *AuthService) VerifyToken(raw string) (auth.Identity, error) {
	return s.tokens.Verify(raw)
}

// EnsureSuperAdmin creates the reserved "admin" account when it does not yet
// exist. It reports whether an account was created.
func (s *AuthService) EnsureSuperAdmin(ctx context.Context, password string) (bool, error) {
	if password == "" {
		return false, fmt.Errorf("%w: admin password is empty", models.ErrValidation)
	}
	_, err := s.users.FindByUsername(ctx, models.SuperAdminUsername)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return false, fmt.Errorf("lookup super admin: %w", err)
	}
	if _, err := s.createUser(ctx, models.SuperAdminUsername, password, models.RoleAdmin); err != nil {
		if errors.Is(err, models.ErrDuplicateUser) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// createUser hashes the password and persists the record.
func (s *AuthService) createUser(ctx context.Context, username, password, role string) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}
	created, err := s.users.CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return models.User{}, models.ErrDuplicateUser
		}
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

func (s *AuthService) issue(user models.User) (AuthResult, error) {
	token, err := s.tokens.Generate(user)
	if err != nil {
		return AuthResult{}, fmt.Errorf("generate token: %w", err)
	}
	return AuthResult{Token: token, Role: user.Role, User: user}, nil
}
