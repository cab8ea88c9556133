package repository

import (
	"context"
	"fmt"

	"coffee-house/internal/data/entity"
	"coffee-house/pkg/database"

	"go.uber.org/zap"
)

type EventCategoryRepository interface {
	Create(ctx context.Context, category *entity.EventCategory) error
	FindAll(ctx context.Context) ([]*entity.EventCategory, error)
}

type eventCategoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEventCategoryRepository(db database.PgxIface, log *zap.Logger) EventCategoryRepository {
	return &eventCategoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "event_category")),
	}
}

func (r *eventCategoryRepository) Create(ctx context.Context, category *entity.EventCategory) error {
	query := `
		INSERT INTO event_categories (id, name, created_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query,
		category.ID,
		category.Name,
		category.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create event category",
			zap.Error(err),
			zap.String("name", category.Name),
		)
		return fmt.Errorf("create event category %s: %w", category.Name, err)
	}

	return nil
}

func (r *eventCategoryRepository) FindAll(ctx context.Context) ([]*entity.EventCategory, error) {
	query := `
		SELECT id, name, created_at
		FROM event_categories
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find event categories", zap.Error(err))
		return nil, fmt.Errorf("find event categories: %w", err)
	}
	defer rows.Close()

	var categories []*entity.EventCategory
	for rows.Next() {
		var category entity.EventCategory
		err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan event category row", zap.Error(err))
			return nil, fmt.Errorf("scan event category row: %w", err)
		}
		categories = append(categories, &category)
	}

	return categories, nil
}
