package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/hongminglow/newsroom-be/internal/auth"
	"github.com/hongminglow/newsroom-be/internal/http/respond"
	"github.com/hongminglow/newsroom-be/internal/models"
)

// TokenVerifier validates raw bearer tokens.
type TokenVerifier interface {
	VerifyToken(raw string) (auth.Identity, error)
}

// RequireAuth rejects requests without a valid token and stores the verified
// identity on the request context. Expired and forged tokens get the same 401.
func RequireAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := tokenFromRequest(r)
			if raw == "" {
				respond.Error(w, http.StatusUnauthorized, "no token, authorization denied")
				return
			}
			id, err := verifier.VerifyToken(raw)
			if err != nil {
				respond.Error(w, http.StatusUnauthorized, models.ErrInvalidToken.Error())
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), id)))
		})
	}
}

// RequireAdmin admits only admin-role identities. It must run after RequireAuth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := auth.IdentityFromContext(r.Context())
		if !ok {
			respond.Error(w, http.StatusUnauthorized, "no token, authorization denied")
			return
		}
		if err := auth.RequireAdmin(id); err != nil {
			if errors.Is(err, models.ErrForbidden) {
				respond.Error(w, http.StatusForbidden, "access denied, admin role required")
				return
			}
			respond.Internal(w, "server error", err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// tokenFromRequest accepts "Authorization: Bearer <token>" and the legacy
// x-auth-token header. Any other Authorization value falls through to
// x-auth-token.
func tokenFromRequest(r *http.Request) string {
	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if found && strings.EqualFold(scheme, "Bearer") {
		if token = strings.TrimSpace(token); token != "" {
			return token
		}
	}
	return strings.TrimSpace(r.Header.Get("X-Auth-Token"))
}
