package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/hongminglow/newsroom-be/internal/models"
	"github.com/hongminglow/newsroom-be/internal/storage"
)

func (s *Store) CreateMessage(ctx context.Context, msg models.ContactMessage) (models.ContactMessage, error) {
	id, err := storage.NewID()
	if err != nil {
		return models.ContactMessage{}, fmt.Errorf("generate message id: %w", err)
	}
	msg.ID = id
	msg.CreatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO contact_messages (id, name, email, message, created_at) VALUES (?, ?, ?, ?, ?)`,
		msg.ID, msg.Name, msg.Email, msg.Message, formatTime(msg.CreatedAt),
	)
	if err != nil {
		return models.ContactMessage{}, fmt.Errorf("insert contact message: %w", err)
	}
	return msg, nil
}

func (s *Store) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, email, message, created_at FROM contact_messages ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query contact messages: %w", err)
	}
	defer rows.Close()

	messages := []models.ContactMessage{}
	for rows.Next() {
		var (
			msg       models.ContactMessage
			createdAt string
		)
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		if msg.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

func (s *Store) DeleteMessage(ctx context.Context, id string) error {
	id, err := storage.NormalizeID(id)
	if err != nil {
		return err
	}
	return s.execOne(ctx, `DELETE FROM contact_messages WHERE id = ?`, id)
}
