package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hongminglow/newsroom-be/internal/models"
	"github.com/hongminglow/newsroom-be/internal/storage"
)

const postColumns = `id, title, content, author, font_family, image_url, created_at`

func (s *Store) CreatePost(ctx context.Context, post models.NewsPost) (models.NewsPost, error) {
	id, err := storage.NewID()
	if err != nil {
		return models.NewsPost{}, fmt.Errorf("generate post id: %w", err)
	}
	post.ID = id
	post.CreatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO news_posts (id, title, content, author, font_family, image_url, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		post.ID, post.Title, post.Content, post.Author, post.FontFamily, post.ImageURL, formatTime(post.CreatedAt),
	)
	if err != nil {
		return models.NewsPost{}, fmt.Errorf("insert news post: %w", err)
	}
	return post, nil
}

func (s *Store) FindPost(ctx context.Context, id string) (models.NewsPost, error) {
	id, err := storage.NormalizeID(id)
	if err != nil {
		return models.NewsPost{}, err
	}
	return scanPost(s.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM news_posts WHERE id = ?`, id))
}

func (s *Store) ListPosts(ctx context.Context) ([]models.NewsPost, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+postColumns+` FROM news_posts ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query news posts: %w", err)
	}
	defer rows.Close()

	posts := []models.NewsPost{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func (s *Store) UpdatePost(ctx context.Context, post models.NewsPost) (models.NewsPost, error) {
	id, err := storage.NormalizeID(post.ID)
	if err != nil {
		return models.NewsPost{}, err
	}
	err = s.execOne(ctx,
		`UPDATE news_posts SET title = ?, content = ?, font_family = ?, image_url = ? WHERE id = ?`,
		post.Title, post.Content, post.FontFamily, post.ImageURL, id,
	)
	if err != nil {
		return models.NewsPost{}, err
	}
	return s.FindPost(ctx, id)
}

func (s *Store) DeletePost(ctx context.Context, id string) error {
	id, err := storage.NormalizeID(id)
	if err != nil {
		return err
	}
	return s.execOne(ctx, `DELETE FROM news_posts WHERE id = ?`, id)
}

func scanPost(row scanner) (models.NewsPost, error) {
	var (
		post      models.NewsPost
		createdAt string
	)
	if err := row.Scan(&post.ID, &post.Title, &post.Content, &post.Author, &post.FontFamily, &post.ImageURL, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.NewsPost{}, storage.ErrNotFound
		}
		return models.NewsPost{}, fmt.Errorf("scan news post: %w", err)
	}
	t, err := parseTime(createdAt)
	if err != nil {
		return models.NewsPost{}, err
	}
	post.CreatedAt = t
	return post, nil
}
