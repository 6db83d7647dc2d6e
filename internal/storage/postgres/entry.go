package postgres

import (
	"context"
	"time"

	"github.com/mindflowbot/mindflow/internal/models"
	"github.com/mindflowbot/mindflow/internal/storage"
)

func (s *Store) CreateEntry(ctx context.Context, entry *models.Entry) error {
	return s.pool.QueryRow(ctx,
		`INSERT INTO entries (user_id, text, category) VALUES ($1, $2, $3)
		 RETURNING entry_id, created_at`,
		entry.UserID, entry.Text, entry.Category,
	).Scan(&entry.EntryID, &entry.CreatedAt)
}

func (s *Store) TodayEntries(ctx context.Context, userID int64) ([]*models.Entry, error) {
	return s.EntriesByDate(ctx, userID, time.Now())
}

func (s *Store) EntriesByDate(ctx context.Context, userID int64, day time.Time) ([]*models.Entry, error) {
	start, end := storage.DayBounds(day)
	rows, err := s.pool.Query(ctx,
		`SELECT entry_id, user_id, text, category, created_at
		 FROM entries WHERE user_id = $1 AND created_at >= $2 AND created_at < $3
		 ORDER BY created_at DESC`,
		userID, start, end,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.Entry
	for rows.Next() {
		entry := &models.Entry{}
		if err := rows.Scan(&entry.EntryID, &entry.UserID, &entry.Text, &entry.Category, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *Store) SearchEntries(ctx context.Context, userID int64, term string) ([]*models.Entry, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT entry_id, user_id, text, category, created_at
		 FROM entries WHERE user_id = $1 AND text ILIKE $2
		 ORDER BY created_at DESC`,
		userID, "%"+term+"%",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.Entry
	for rows.Next() {
		entry := &models.Entry{}
		if err := rows.Scan(&entry.EntryID, &entry.UserID, &entry.Text, &entry.Category, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
