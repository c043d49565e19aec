package dto

// NewsRequest is used for both create and partial update; empty fields are
// treated as absent on update.
type NewsRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	FontFamily string `json:"fontFamily"`
	ImageURL   string `json:"imageUrl"`
}
