package models

// CustomCategory is a user-defined category with its trigger keywords.
// Keywords is a comma-separated list, matched case-insensitively.
type CustomCategory struct {
	CategoryID int64  `json:"category_id"`
	UserID     int64  `json:"user_id"`
	Name       string `json:"name"`
	Keywords   string `json:"keywords"`
}
