package models

// FavoriteRequest is the body of favorite creation and removal requests.
type FavoriteRequest struct {
	// UserID is the owner of the favorite. Zero is treated as missing.
	UserID int64 `json:"user_id"`
}

// ErrorResponse is the uniform JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the JSON envelope of informational replies.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// Sitemap maps every registered route pattern to its allowed HTTP methods.
type Sitemap map[string][]string
