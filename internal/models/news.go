package models

import "time"

const (
	DefaultNewsAuthor     = "Admin"
	DefaultNewsFontFamily = "Inter, sans-serif"
	DefaultNewsImageURL   = "https://placehold.co/600x400/E0E7FF/4338CA?text=Noticia"
)

// NewsPost is a published article. ImageURL may hold either a link or an
// inline base64 data URI.
type NewsPost struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	FontFamily string    `json:"fontFamily"`
	ImageURL   string    `json:"imageUrl"`
	CreatedAt  time.Time `json:"createdAt"`
}
