package sqlite

import (
	"context"
	"time"

	"github.com/mindflowbot/mindflow/internal/models"
	"github.com/mindflowbot/mindflow/internal/storage"
)

func (s *Store) CreateEntry(ctx context.Context, entry *models.Entry) error {
	row := entryRow{
		UserID:   entry.UserID,
		Text:     entry.Text,
		Category: entry.Category,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	entry.EntryID = row.EntryID
	entry.CreatedAt = row.CreatedAt
	return nil
}

func (s *Store) TodayEntries(ctx context.Context, userID int64) ([]*models.Entry, error) {
	return s.EntriesByDate(ctx, userID, time.Now())
}

func (s *Store) EntriesByDate(ctx context.Context, userID int64, day time.Time) ([]*models.Entry, error) {
	start, end := storage.DayBounds(day)
	var rows []entryRow
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return entriesToModels(rows), nil
}

func (s *Store) SearchEntries(ctx context.Context, userID int64, term string) ([]*models.Entry, error) {
	var rows []entryRow
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND text LIKE ?", userID, "%"+term+"%").
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return entriesToModels(rows), nil
}

func entriesToModels(rows []entryRow) []*models.Entry {
	entries := make([]*models.Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, r.toModel())
	}
	return entries
}
