package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/hongminglow/newsroom-be/internal/models"
	"github.com/hongminglow/newsroom-be/internal/storage"
)

// NewsInput carries the editable fields of a post. On update, empty fields
// keep their stored value.
type NewsInput struct {
	Title      string
	Content    string
	FontFamily string
	ImageURL   string
}

// NewsService manages news posts.
type NewsService struct {
	posts storage.NewsStore
	text  *bluemonday.Policy
}

// NewNewsService creates a NewsService. Post content is stored exactly as
// submitted, trimmed of surrounding whitespace.
func NewNewsService(posts storage.NewsStore) *NewsService {
	return &NewsService{posts: posts, text: bluemonday.StrictPolicy()}
}

// Create stores a new post written by author.
func (s *NewsService) Create(ctx context.Context, author string, in NewsInput) (models.NewsPost, error) {
	post := models.NewsPost{
		Title:      strings.TrimSpace(in.Title),
		Content:    strings.TrimSpace(in.Content),
		Author:     strings.TrimSpace(author),
		FontFamily: strings.TrimSpace(in.FontFamily),
		ImageURL:   strings.TrimSpace(in.ImageURL),
	}
	if post.Title == "" || post.Content == "" || post.FontFamily == "" || post.ImageURL == "" {
		return models.NewsPost{}, fmt.Errorf("%w: title, content, font family and image url are required", models.ErrValidation)
	}
	if err := s.checkReadable(post.Content); err != nil {
		return models.NewsPost{}, err
	}
	if post.Author == "" {
		post.Author = models.DefaultNewsAuthor
	}

	created, err := s.posts.CreatePost(ctx, post)
	if err != nil {
		return models.NewsPost{}, fmt.Errorf("create news post: %w", err)
	}
	return created, nil
}

// List returns all posts, newest first.
func (s *NewsService) List(ctx context.Context) ([]models.NewsPost, error) {
	posts, err := s.posts.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list news posts: %w", err)
	}
	return posts, nil
}

// Get returns a single post.
func (s *NewsService) Get(ctx context.Context, id string) (models.NewsPost, error) {
	post, err := s.posts.FindPost(ctx, id)
	if err != nil {
		return models.NewsPost{}, notFound(err, "find news post")
	}
	return post, nil
}

// Update applies a partial update. When nothing differs from the stored post
// no write is issued and the stored post is returned as is.
func (s *NewsService) Update(ctx context.Context, id string, in NewsInput) (models.NewsPost, error) {
	post, err := s.posts.FindPost(ctx, id)
	if err != nil {
		return models.NewsPost{}, notFound(err, "find news post")
	}

	next := post
	if title := strings.TrimSpace(in.Title); title != "" {
		next.Title = title
	}
	if content := strings.TrimSpace(in.Content); content != "" {
		if err := s.checkReadable(content); err != nil {
			return models.NewsPost{}, err
		}
		next.Content = content
	}
	if font := strings.TrimSpace(in.FontFamily); font != "" {
		next.FontFamily = font
	}
	if image := strings.TrimSpace(in.ImageURL); image != "" {
		next.ImageURL = image
	}
	if next == post {
		return post, nil
	}

	updated, err := s.posts.UpdatePost(ctx, next)
	if err != nil {
		return models.NewsPost{}, notFound(err, "update news post")
	}
	return updated, nil
}

// Delete removes a post.
func (s *NewsService) Delete(ctx context.Context, id string) error {
	if err := s.posts.DeletePost(ctx, id); err != nil {
		return notFound(err, "delete news post")
	}
	return nil
}

// checkReadable rejects content that is markup only, such as a lone script
// element. The content itself is never rewritten.
func (s *NewsService) checkReadable(content string) error {
	visible := html.UnescapeString(s.text.Sanitize(content))
	if strings.TrimSpace(visible) == "" {
		return fmt.Errorf("%w: content has no readable text", models.ErrValidation)
	}
	return nil
}
