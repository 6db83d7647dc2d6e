// Package scheduler runs the background delivery loop for due reminders.
//
// A reminder has exactly two states: unsent (pending) and sent (delivered).
// Each tick queries for due unsent reminders and delivers them in ascending
// due order. A failed delivery leaves the record unsent so the next tick
// retries it; a failed due query skips the whole tick. The loop stops only on
// context cancellation, observed between ticks — never mid-delivery.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/mindflowbot/mindflow/internal/models"
)

// ReminderSource is the slice of the store the scheduler needs.
type ReminderSource interface {
	DueReminders(ctx context.Context, now time.Time) ([]*models.Reminder, error)
	MarkReminderSent(ctx context.Context, reminderID int64) error
}

// Messenger delivers a reminder text to its owning user.
type Messenger interface {
	Send(ctx context.Context, userID int64, text string) error
}

type Scheduler struct {
	store         ReminderSource
	messenger     Messenger
	checkInterval time.Duration
	notifyCh      chan struct{}
}

func New(store ReminderSource, messenger Messenger, checkInterval time.Duration) *Scheduler {
	if checkInterval <= 0 {
		checkInterval = 1 * time.Minute
	}
	return &Scheduler{
		store:         store,
		messenger:     messenger,
		checkInterval: checkInterval,
		notifyCh:      make(chan struct{}, 1),
	}
}

// Notify triggers an immediate check. Non-blocking if a check is already pending.
func (s *Scheduler) Notify() {
	select {
	case s.notifyCh <- struct{}{}:
	default:
	}
}

// Run blocks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	log.Println("Reminder scheduler started")
	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()

	s.tick(ctx, time.Now())

	for {
		select {
		case <-ctx.Done():
			log.Println("Reminder scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx, time.Now())
		case <-s.notifyCh:
			s.tick(ctx, time.Now())
		}
	}
}

// tick runs one due-check-and-deliver cycle. Deliveries happen sequentially
// in the order the store returns them, so urgency order is preserved.
func (s *Scheduler) tick(ctx context.Context, now time.Time) {
	due, err := s.store.DueReminders(ctx, now)
	if err != nil {
		log.Printf("Failed to get due reminders, skipping tick: %v", err)
		return
	}

	for _, reminder := range due {
		if err := s.messenger.Send(ctx, reminder.UserID, reminder.Text); err != nil {
			// Record stays unsent; the next tick retries it. One failure
			// never blocks the rest of the batch.
			log.Printf("Failed to deliver reminder %d to user %d: %v", reminder.ReminderID, reminder.UserID, err)
			continue
		}
		if err := s.store.MarkReminderSent(ctx, reminder.ReminderID); err != nil {
			// Delivered but not marked: it will be redelivered next tick.
			// Accepted at-least-once behavior.
			log.Printf("Reminder %d delivered but not marked sent: %v", reminder.ReminderID, err)
			continue
		}
		log.Printf("Delivered reminder %d to user %d", reminder.ReminderID, reminder.UserID)
	}
}
