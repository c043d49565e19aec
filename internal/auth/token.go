package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hongminglow/newsroom-be/internal/models"
)

// Identity is the verified principal carried by a token.
type Identity struct {
	ID       string
	Username string
	Role     string
}

type claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies signed JWTs for authenticated users.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenManager creates a manager with the provided secret, issuer, and lifetime.
func NewTokenManager(secret, issuer string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// Generate issues a signed JWT string embedding the user's id, username and role.
func (t *TokenManager) Generate(user models.User) (string, error) {
	now := time.Now()
	c := claims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(t.secret)
}

// Verify checks signature, issuer and expiry. Every failure is reported as
// models.ErrInvalidToken so callers cannot tell an expired token from a forged one.
func (t *TokenManager) Verify(raw string) (Identity, error) {
	var c claims
	token, err := jwt.ParseWithClaims(raw, &c, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", models.ErrInvalidToken, err)
	}
	if !token.Valid {
		return Identity{}, models.ErrInvalidToken
	}
	if c.Subject == "" || c.Username == "" || !models.ValidRole(c.Role) {
		return Identity{}, fmt.Errorf("%w: incomplete claims", models.ErrInvalidToken)
	}
	return Identity{ID: c.Subject, Username: c.Username, Role: c.Role}, nil
}
