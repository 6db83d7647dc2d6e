// Package storage defines the persistence contract shared by all backends.
// The backend is chosen once at startup: PostgreSQL when DATABASE_URI is set,
// an embedded SQLite file otherwise.
package storage

import (
	"context"
	"time"

	"github.com/mindflowbot/mindflow/internal/models"
)

type EntryStore interface {
	// CreateEntry inserts a new journal entry and fills EntryID and CreatedAt.
	CreateEntry(ctx context.Context, entry *models.Entry) error
	// TodayEntries returns the user's entries for the current local day,
	// newest first.
	TodayEntries(ctx context.Context, userID int64) ([]*models.Entry, error)
	// EntriesByDate returns the user's entries for the local day containing
	// day, newest first.
	EntriesByDate(ctx context.Context, userID int64, day time.Time) ([]*models.Entry, error)
	// SearchEntries returns the user's entries whose text contains term,
	// newest first.
	SearchEntries(ctx context.Context, userID int64, term string) ([]*models.Entry, error)
}

type ReminderStore interface {
	// CreateReminder inserts a new unsent reminder and fills ReminderID and
	// CreatedAt. A failed write leaves the already-saved entry untouched.
	CreateReminder(ctx context.Context, reminder *models.Reminder) error
	// DueReminders returns unsent reminders with due_at <= now, earliest due
	// first. A reminder never appears after MarkReminderSent committed for it.
	DueReminders(ctx context.Context, now time.Time) ([]*models.Reminder, error)
	// MarkReminderSent flips is_sent to true. Idempotent: a second call is a
	// no-op because the update is filtered on is_sent = false.
	MarkReminderSent(ctx context.Context, reminderID int64) error
	// RemindersForUser returns all of the user's reminders, most recent due
	// time first.
	RemindersForUser(ctx context.Context, userID int64) ([]*models.Reminder, error)
}

type CategoryStore interface {
	// UpsertCustomCategory inserts or replaces a user's custom category by
	// (user, name) and fills CategoryID.
	UpsertCustomCategory(ctx context.Context, category *models.CustomCategory) error
	// CustomCategoriesForUser returns the user's custom categories.
	CustomCategoriesForUser(ctx context.Context, userID int64) ([]*models.CustomCategory, error)
	// AllCustomCategories returns every custom category across users, for the
	// categorizer cache.
	AllCustomCategories(ctx context.Context) ([]*models.CustomCategory, error)
}

// Store is the full persistence surface a backend must provide.
type Store interface {
	EntryStore
	ReminderStore
	CategoryStore

	Migrate(ctx context.Context) error
	Close() error
}

// DayBounds returns the half-open interval [start, end) of the local day
// containing t, used by both backends for date-scoped entry queries.
func DayBounds(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
