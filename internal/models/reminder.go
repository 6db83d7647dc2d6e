package models

import "time"

type Reminder struct {
	ReminderID int64     `json:"reminder_id"`
	UserID     int64     `json:"user_id"`
	EntryID    int64     `json:"entry_id"`
	Text       string    `json:"text"`      // entry text, repeated verbatim on delivery
	DueAt      time.Time `json:"due_at"`    // computed once at creation, never recomputed
	IsSent     bool      `json:"is_sent"`   // flips false -> true exactly once
	CreatedAt  time.Time `json:"created_at"`
}

// IsDue reports whether the reminder is eligible for delivery at the given time.
func (r *Reminder) IsDue(now time.Time) bool {
	return !r.IsSent && !r.DueAt.After(now)
}
