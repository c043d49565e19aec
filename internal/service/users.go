package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hongminglow/newsroom-be/internal/auth"
	"github.com/hongminglow/newsroom-be/internal/models"
	"github.com/hongminglow/newsroom-be/internal/storage"
)

// UserService implements account administration.
type UserService struct {
	users storage.UserStore
}

// NewUserService creates a new UserService.
func NewUserService(users storage.UserStore) *UserService {
	return &UserService{users: users}
}

// List returns every account. Password hashes never leave the models layer
// because User.PasswordHash is not serialised.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GrantAdmin promotes target to admin. It reports false when the target
// already was an admin.
func (s *UserService) GrantAdmin(ctx context.Context, caller auth.Identity, target string) (bool, error) {
	if err := s.requireSuperAdmin(ctx, caller); err != nil {
		return false, err
	}
	target = strings.TrimSpace(target)
	if target == "" {
		return false, fmt.Errorf("%w: username to update is required", models.ErrValidation)
	}
	if target == caller.Username {
		return false, fmt.Errorf("%w: you cannot change your own role", models.ErrValidation)
	}

	user, err := s.users.FindByUsername(ctx, target)
	if err != nil {
		return false, notFound(err, "lookup user")
	}
	if user.IsAdmin() {
		return false, nil
	}
	if err := s.users.UpdateRole(ctx, user.ID, models.RoleAdmin); err != nil {
		return false, notFound(err, "update role")
	}
	return true, nil
}

// Delete removes the account with the given id.
func (s *UserService) Delete(ctx context.Context, caller auth.Identity, id string) error {
	if err := s.requireSuperAdmin(ctx, caller); err != nil {
		return err
	}
	if canonical, err := storage.NormalizeID(id); err == nil && canonical == caller.ID {
		return fmt.Errorf("%w: you cannot delete your own account", models.ErrValidation)
	}
	if err := s.users.DeleteUser(ctx, id); err != nil {
		return notFound(err, "delete user")
	}
	return nil
}

// requireSuperAdmin re-reads the caller so that a deleted or renamed account
// cannot act on a still-valid token.
func (s *UserService) requireSuperAdmin(ctx context.Context, caller auth.Identity) error {
	if err := auth.RequireAdmin(caller); err != nil {
		return err
	}
	user, err := s.users.FindUserByID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.ErrForbidden
		}
		return fmt.Errorf("lookup caller: %w", err)
	}
	if user.Username != models.SuperAdminUsername {
		return fmt.Errorf("%w: only the primary administrator may do this", models.ErrForbidden)
	}
	return nil
}

// notFound translates storage.ErrNotFound into the service-level sentinel.
func notFound(err error, op string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return models.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
