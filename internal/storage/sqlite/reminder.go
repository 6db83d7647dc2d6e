package sqlite

import (
	"context"
	"time"

	"github.com/mindflowbot/mindflow/internal/models"
)

func (s *Store) CreateReminder(ctx context.Context, reminder *models.Reminder) error {
	row := reminderRow{
		UserID:  reminder.UserID,
		EntryID: reminder.EntryID,
		Text:    reminder.Text,
		DueAt:   reminder.DueAt,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	reminder.ReminderID = row.ReminderID
	reminder.CreatedAt = row.CreatedAt
	return nil
}

func (s *Store) DueReminders(ctx context.Context, now time.Time) ([]*models.Reminder, error) {
	var rows []reminderRow
	err := s.db.WithContext(ctx).
		Where("is_sent = ? AND due_at <= ?", false, now).
		Order("due_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return remindersToModels(rows), nil
}

func (s *Store) MarkReminderSent(ctx context.Context, reminderID int64) error {
	return s.db.WithContext(ctx).
		Model(&reminderRow{}).
		Where("reminder_id = ? AND is_sent = ?", reminderID, false).
		Update("is_sent", true).Error
}

func (s *Store) RemindersForUser(ctx context.Context, userID int64) ([]*models.Reminder, error) {
	var rows []reminderRow
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("due_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return remindersToModels(rows), nil
}

func remindersToModels(rows []reminderRow) []*models.Reminder {
	reminders := make([]*models.Reminder, 0, len(rows))
	for _, r := range rows {
		reminders = append(reminders, r.toModel())
	}
	return reminders
}
