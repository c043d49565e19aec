package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/hongminglow/newsroom-be/internal/models"
	"github.com/hongminglow/newsroom-be/internal/storage"
)

var emailPattern = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[\w-]{2,4}$`)

// ContactService manages the contact inbox.
type ContactService struct {
	messages storage.ContactStore
}

// NewContactService creates a new ContactService.
func NewContactService(messages storage.ContactStore) *ContactService {
	return &ContactService{messages: messages}
}

// Submit validates and stores a public contact form submission.
func (s *ContactService) Submit(ctx context.Context, name, email, message string) (models.ContactMessage, error) {
	msg := models.ContactMessage{
		Name:    strings.TrimSpace(name),
		Email:   strings.ToLower(strings.TrimSpace(email)),
		Message: strings.TrimSpace(message),
	}
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return models.ContactMessage{}, fmt.Errorf("%w: name, email and message are required", models.ErrValidation)
	}
	if !emailPattern.MatchString(msg.Email) {
		return models.ContactMessage{}, fmt.Errorf("%w: please provide a valid email address", models.ErrValidation)
	}

	created, err := s.messages.CreateMessage(ctx, msg)
	if err != nil {
		return models.ContactMessage{}, fmt.Errorf("create contact message: %w", err)
	}
	return created, nil
}

// List returns every message, newest first.
func (s *ContactService) List(ctx context.Context) ([]models.ContactMessage, error) {
	messages, err := s.messages.ListMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return messages, nil
}

// Delete removes a message.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	if err := s.messages.DeleteMessage(ctx, id); err != nil {
		return notFound(err, "delete contact message")
	}
	return nil
}
