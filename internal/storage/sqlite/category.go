package sqlite

import (
	"context"

	"gorm.io/gorm/clause"

	"github.com/mindflowbot/mindflow/internal/models"
)

func (s *Store) UpsertCustomCategory(ctx context.Context, category *models.CustomCategory) error {
	row := categoryRow{
		UserID:   category.UserID,
		Name:     category.Name,
		Keywords: category.Keywords,
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"keywords"}),
		}).
		Create(&row).Error
	if err != nil {
		return err
	}
	category.CategoryID = row.CategoryID
	return nil
}

func (s *Store) CustomCategoriesForUser(ctx context.Context, userID int64) ([]*models.CustomCategory, error) {
	var rows []categoryRow
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return categoriesToModels(rows), nil
}

func (s *Store) AllCustomCategories(ctx context.Context) ([]*models.CustomCategory, error) {
	var rows []categoryRow
	err := s.db.WithContext(ctx).
		Order("user_id, name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return categoriesToModels(rows), nil
}

func categoriesToModels(rows []categoryRow) []*models.CustomCategory {
	categories := make([]*models.CustomCategory, 0, len(rows))
	for _, r := range rows {
		categories = append(categories, r.toModel())
	}
	return categories
}
