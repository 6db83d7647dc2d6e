package postgres

import (
	"context"

	"github.com/mindflowbot/mindflow/internal/models"
)

func (s *Store) UpsertCustomCategory(ctx context.Context, category *models.CustomCategory) error {
	return s.pool.QueryRow(ctx,
		`INSERT INTO custom_categories (user_id, name, keywords) VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, name) DO UPDATE SET keywords = EXCLUDED.keywords
		 RETURNING category_id`,
		category.UserID, category.Name, category.Keywords,
	).Scan(&category.CategoryID)
}

func (s *Store) CustomCategoriesForUser(ctx context.Context, userID int64) ([]*models.CustomCategory, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT category_id, user_id, name, keywords
		 FROM custom_categories WHERE user_id = $1 ORDER BY name ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.CustomCategory
	for rows.Next() {
		cat := &models.CustomCategory{}
		if err := rows.Scan(&cat.CategoryID, &cat.UserID, &cat.Name, &cat.Keywords); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

func (s *Store) AllCustomCategories(ctx context.Context) ([]*models.CustomCategory, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT category_id, user_id, name, keywords
		 FROM custom_categories ORDER BY user_id, name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.CustomCategory
	for rows.Next() {
		cat := &models.CustomCategory{}
		if err := rows.Scan(&cat.CategoryID, &cat.UserID, &cat.Name, &cat.Keywords); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}
