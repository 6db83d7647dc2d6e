// Package sqlite implements storage.Store on an embedded SQLite file via
// GORM. It is the fallback backend when no DATABASE_URI is configured, and
// doubles as the in-memory backend for tests.
package sqlite

import (
	"context"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mindflowbot/mindflow/internal/storage"
)

type Store struct {
	db *gorm.DB
}

var _ storage.Store = (*Store)(nil)

// New opens the database at path. Any DSN the sqlite driver understands
// works, including file:...?mode=memory&cache=shared for tests.
func New(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&entryRow{}, &reminderRow{}, &categoryRow{})
}

func (s *Store) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
