package repository

import (
	"context"
	"fmt"

	"coffee-house/internal/data/entity"
	"coffee-house/pkg/database"

	"go.uber.org/zap"
)

type MenuCategoryRepository interface {
	Create(ctx context.Context, category *entity.MenuCategory) error
	FindAll(ctx context.Context) ([]*entity.MenuCategory, error)
}

type menuCategoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMenuCategoryRepository(db database.PgxIface, log *zap.Logger) MenuCategoryRepository {
	return &menuCategoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "menu_category")),
	}
}

func (r *menuCategoryRepository) Create(ctx context.Context, category *entity.MenuCategory) error {
	query := `
		INSERT INTO menu_categories (id, name, display_order, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		category.ID,
		category.Name,
		category.DisplayOrder,
		category.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create menu category",
			zap.Error(err),
			zap.String("name", category.Name),
		)
		return fmt.Errorf("create menu category %s: %w", category.Name, err)
	}

	return nil
}

func (r *menuCategoryRepository) FindAll(ctx context.Context) ([]*entity.MenuCategory, error) {
	query := `
		SELECT id, name, display_order, created_at
		FROM menu_categories
		ORDER BY display_order, name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find menu categories", zap.Error(err))
		return nil, fmt.Errorf("find menu categories: %w", err)
	}
	defer rows.Close()

	var categories []*entity.MenuCategory
	for rows.Next() {
		var category entity.MenuCategory
		err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.DisplayOrder,
			&category.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan menu category row", zap.Error(err))
			return nil, fmt.Errorf("scan menu category row: %w", err)
		}
		categories = append(categories, &category)
	}

	return categories, nil
}
