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

const postColumns = `id, title, content, author, font_family, image_url, created_at`

// CreatePost inserts a news post.
func (s *Store) CreatePost(ctx context.Context, post models.NewsPost) (models.NewsPost, error) {
	id, err := storage.NewID()
	if err != nil {
		return models.NewsPost{}, fmt.Errorf("generate post id: %w", err)
	}
	post.ID = id
	post.CreatedAt = time.Now().UTC()

	const query = `
		INSERT INTO news_posts (id, title, content, author, font_family, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + postColumns
	row := s.pool.QueryRow(ctx, query, post.ID, post.Title, post.Content, post.Author, post.FontFamily, post.ImageURL, post.CreatedAt)
	return scanPost(row)
}

// FindPost fetches a news post by id.
func (s *Store) FindPost(ctx context.Context, id string) (models.NewsPost, error) {
	id, err := storage.NormalizeID(id)
	if err != nil {
		return models.NewsPost{}, err
	}
	row := s.pool.QueryRow(ctx, `SELECT `+postColumns+` FROM news_posts WHERE id = $1`, id)
	return scanPost(row)
}

// ListPosts returns all posts, newest first.
func (s *Store) ListPosts(ctx context.Context) ([]models.NewsPost, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+postColumns+` FROM news_posts ORDER BY created_at DESC, id DESC`)
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

// UpdatePost overwrites the editable fields of an existing post.
func (s *Store) UpdatePost(ctx context.Context, post models.NewsPost) (models.NewsPost, error) {
	id, err := storage.NormalizeID(post.ID)
	if err != nil {
		return models.NewsPost{}, err
	}
	const query = `
		UPDATE news_posts
		SET title = $2, content = $3, font_family = $4, image_url = $5
		WHERE id = $1
		RETURNING ` + postColumns
	row := s.pool.QueryRow(ctx, query, id, post.Title, post.Content, post.FontFamily, post.ImageURL)
	return scanPost(row)
}

// DeletePost removes a news post.
func (s *Store) DeletePost(ctx context.Context, id string) error {
	id, err := storage.NormalizeID(id)
	if err != nil {
		return err
	}
	return s.execOne(ctx, `DELETE FROM news_posts WHERE id = $1`, id)
}

func scanPost(row pgx.Row) (models.NewsPost, error) {
	var post models.NewsPost
	if err := row.Scan(&post.ID, &post.Title, &post.Content, &post.Author, &post.FontFamily, &post.ImageURL, &post.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.NewsPost{}, storage.ErrNotFound
		}
		return models.NewsPost{}, err
	}
	return post, nil
}
