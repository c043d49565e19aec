package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hongminglow/newsroom-be/internal/models"
	"github.com/hongminglow/newsroom-be/internal/storage"
)

const messageColumns = `id, name, email, message, created_at`

// CreateMessage stores a contact form submission.
func (s *Store) CreateMessage(ctx context.Context, msg models.ContactMessage) (models.ContactMessage, error) {
	id, err := storage.NewID()
	if err != nil {
		return models.ContactMessage{}, fmt.Errorf("generate message id: %w", err)
	}
	msg.ID = id
	msg.CreatedAt = time.Now().UTC()

	const query = `
		INSERT INTO contact_messages (id, name, email, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + messageColumns
	row := s.pool.QueryRow(ctx, query, msg.ID, msg.Name, msg.Email, msg.Message, msg.CreatedAt)
	return scanMessage(row)
}

// ListMessages returns all contact messages, newest first.
func (s *Store) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+messageColumns+` FROM contact_messages ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query contact messages: %w", err)
	}
	defer rows.Close()

	messages := []models.ContactMessage{}
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

// DeleteMessage removes a contact message.
func (s *Store) DeleteMessage(ctx context.Context, id string) error {
	id, err := storage.NormalizeID(id)
	if err != nil {
		return err
	}
	return s.execOne(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
}

func scanMessage(row pgx.Row) (models.ContactMessage, error) {
	var msg models.ContactMessage
	if err := row.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Message, &msg.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ContactMessage{}, storage.ErrNotFound
		}
		return models.ContactMessage{}, err
	}
	return msg, nil
}
