package auth

import (
	"context"

	"github.com/hongminglow/newsroom-be/internal/models"
)

// RequireAdmin admits identities holding the admin role.
func RequireAdmin(id Identity) error {
	if id.Role != models.RoleAdmin {
		return models.ErrForbidden
	}
	return nil
}

type contextKey struct{}

// WithIdentity stores a verified identity on the context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// IdentityFromContext returns the identity placed by the auth middleware.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	return id, ok
}
