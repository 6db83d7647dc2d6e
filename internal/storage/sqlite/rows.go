package sqlite

import (
	"time"

	"github.com/mindflowbot/mindflow/internal/models"
)

// Row types keep the GORM column mapping out of the shared models package.

type entryRow struct {
	EntryID   int64     `gorm:"primaryKey;autoIncrement;column:entry_id"`
	UserID    int64     `gorm:"column:user_id;not null;index:idx_entries_user_created"`
	Text      string    `gorm:"column:text;type:text;not null"`
	Category  string    `gorm:"column:category;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index:idx_entries_user_created"`
}

func (entryRow) TableName() string { return "entries" }

func (r entryRow) toModel() *models.Entry {
	return &models.Entry{
		EntryID:   r.EntryID,
		UserID:    r.UserID,
		Text:      r.Text,
		Category:  r.Category,
		CreatedAt: r.CreatedAt,
	}
}

type reminderRow struct {
	ReminderID int64     `gorm:"primaryKey;autoIncrement;column:reminder_id"`
	UserID     int64     `gorm:"column:user_id;not null;index"`
	EntryID    int64     `gorm:"column:entry_id;not null"`
	Text       string    `gorm:"column:text;type:text;not null"`
	DueAt      time.Time `gorm:"column:due_at;not null;index:idx_reminders_pending"`
	IsSent     bool      `gorm:"column:is_sent;not null;default:false;index:idx_reminders_pending"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (reminderRow) TableName() string { return "reminders" }

func (r reminderRow) toModel() *models.Reminder {
	return &models.Reminder{
		ReminderID: r.ReminderID,
		UserID:     r.UserID,
		EntryID:    r.EntryID,
		Text:       r.Text,
		DueAt:      r.DueAt,
		IsSent:     r.IsSent,
		CreatedAt:  r.CreatedAt,
	}
}

type categoryRow struct {
	CategoryID int64  `gorm:"primaryKey;autoIncrement;column:category_id"`
	UserID     int64  `gorm:"column:user_id;not null;uniqueIndex:idx_categories_user_name"`
	Name       string `gorm:"column:name;not null;uniqueIndex:idx_categories_user_name"`
	Keywords   string `gorm:"column:keywords;not null"`
}

func (categoryRow) TableName() string { return "custom_categories" }

func (r categoryRow) toModel() *models.CustomCategory {
	return &models.CustomCategory{
		CategoryID: r.CategoryID,
		UserID:     r.UserID,
		Name:       r.Name,
		Keywords:   r.Keywords,
	}
}
