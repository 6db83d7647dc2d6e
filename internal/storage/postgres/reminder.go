package postgres

import (
	"context"
	"time"

	"github.com/mindflowbot/mindflow/internal/models"
)

func (s *Store) CreateReminder(ctx context.Context, reminder *models.Reminder) error {
	return s.pool.QueryRow(ctx,
		`INSERT INTO reminders (user_id, entry_id, text, due_at) VALUES ($1, $2, $3, $4)
		 RETURNING reminder_id, created_at`,
		reminder.UserID, reminder.EntryID, reminder.Text, reminder.DueAt,
	).Scan(&reminder.ReminderID, &reminder.CreatedAt)
}

func (s *Store) DueReminders(ctx context.Context, now time.Time) ([]*models.Reminder, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT reminder_id, user_id, entry_id, text, due_at, is_sent, created_at
		 FROM reminders WHERE is_sent = false AND due_at <= $1
		 ORDER BY due_at ASC`,
		now,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []*models.Reminder
	for rows.Next() {
		reminder := &models.Reminder{}
		if err := rows.Scan(&reminder.ReminderID, &reminder.UserID, &reminder.EntryID,
			&reminder.Text, &reminder.DueAt, &reminder.IsSent, &reminder.CreatedAt); err != nil {
			return nil, err
		}
		reminders = append(reminders, reminder)
	}
	return reminders, rows.Err()
}

func (s *Store) MarkReminderSent(ctx context.Context, reminderID int64) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE reminders SET is_sent = true WHERE reminder_id = $1 AND is_sent = false`,
		reminderID,
	)
	return err
}

func (s *Store) RemindersForUser(ctx context.Context, userID int64) ([]*models.Reminder, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT reminder_id, user_id, entry_id, text, due_at, is_sent, created_at
		 FROM reminders WHERE user_id = $1
		 ORDER BY due_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []*models.Reminder
	for rows.Next() {
		reminder := &models.Reminder{}
		if err := rows.Scan(&reminder.ReminderID, &reminder.UserID, &reminder.EntryID,
			&reminder.Text, &reminder.DueAt, &reminder.IsSent, &reminder.CreatedAt); err != nil {
			return nil, err
		}
		reminders = append(reminders, reminder)
	}
	return reminders, rows.Err()
}
