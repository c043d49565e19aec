package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hongminglow/newsroom-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures persistence operations for user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateRole(ctx context.Context, id, role string) error
	DeleteUser(ctx context.Context, id string) error
}

// NewsStore captures persistence operations for news posts.
type NewsStore interface {
	CreatePost(ctx context.Context, post models.NewsPost) (models.NewsPost, error)
	FindPost(ctx context.Context, id string) (models.NewsPost, error)
	// ListPosts returns every post, newest first.
	ListPosts(ctx context.Context) ([]models.NewsPost, error)
	UpdatePost(ctx context.Context, post models.NewsPost) (models.NewsPost, error)
	DeletePost(ctx context.Context, id string) error
}

// ContactStore captures persistence operations for contact messages.
type ContactStore interface {
	CreateMessage(ctx context.Context, msg models.ContactMessage) (models.ContactMessage, error)
	// ListMessages returns every message, newest first.
	ListMessages(ctx context.Context) ([]models.ContactMessage, error)
	DeleteMessage(ctx context.Context, id string) error
}

// Store bundles every collection behind a single connection.
type Store interface {
	UserStore
	NewsStore
	ContactStore
	Close()
}

// NewID returns a fresh time-ordered record identifier.
func NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// NormalizeID returns the canonical form of id, or ErrNotFound when id cannot
// name any record.
func NormalizeID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", ErrNotFound
	}
	return parsed.String(), nil
}
