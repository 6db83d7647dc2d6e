package models

import "time"

type Entry struct {
	EntryID   int64     `json:"entry_id"`
	UserID    int64     `json:"user_id"`
	Text      string    `json:"text"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}
