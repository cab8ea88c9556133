package repository

import (
	"context"
	"fmt"

	"coffee-house/internal/data/entity"
	"coffee-house/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MenuItemRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	FindAll(ctx context.Context) ([]*entity.MenuItem, error)
	FindAvailable(ctx context.Context) ([]*entity.MenuItem, error)
	Update(ctx context.Context, item *entity.MenuItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	BulkSetAvailability(ctx context.Context, ids []uuid.UUID, available bool) (int64, error)
}

type menuItemRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMenuItemRepository(db database.PgxIface, log *zap.Logger) MenuItemRepository {
	return &menuItemRepository{
		db:  db,
		log: log.With(zap.String("repository", "menu_item")),
	}
}

const menuItemColumns = `id, category_id, name, description, price, image_url, is_available, created_at, updated_at`

func (r *menuItemRepository) scanItem(row pgx.Row) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := row.Scan(
		&item.ID,
		&item.CategoryID,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.ImageURL,
		&item.IsAvailable,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuItemRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	query := `
		INSERT INTO menu_items (id, category_id, name, description, price, image_url, is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		item.ID,
		item.CategoryID,
		item.Name,
		item.Description,
		item.Price,
		item.ImageURL,
		item.IsAvailable,
		item.CreatedAt,
		item.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create menu item",
			zap.Error(err),
			zap.String("name", item.Name),
		)
		return fmt.Errorf("create menu item %s: %w", item.Name, err)
	}

	return nil
}

func (r *menuItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE id = $1`

	item, err := r.scanItem(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find menu item by ID",
			zap.Error(err),
			zap.String("item_id", id.String()),
		)
		return nil, fmt.Errorf("find menu item by ID %s: %w", id.String(), err)
	}

	return item, nil
}

func (r *menuItemRepository) FindAll(ctx context.Context) ([]*entity.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items ORDER BY name`
	return r.queryItems(ctx, query)
}

func (r *menuItemRepository) FindAvailable(ctx context.Context) ([]*entity.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE is_available = TRUE ORDER BY name`
	return r.queryItems(ctx, query)
}

func (r *menuItemRepository) queryItems(ctx context.Context, query string, args ...any) ([]*entity.MenuItem, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query menu items", zap.Error(err))
		return nil, fmt.Errorf("query menu items: %w", err)
	}
	defer rows.Close()

	var items []*entity.MenuItem
	for rows.Next() {
		item, err := r.scanItem(rows)
		if err != nil {
			r.log.Error("Failed to scan menu item row", zap.Error(err))
			return nil, fmt.Errorf("scan menu item row: %w", err)
		}
		items = append(items, item)
	}

	return items, nil
}

func (r *menuItemRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	query := `
		UPDATE menu_items
		SET category_id = $2, name = $3, description = $4, price = $5,
		    image_url = $6, is_available = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		item.ID,
		item.CategoryID,
		item.Name,
		item.Description,
		item.Price,
		item.ImageURL,
		item.IsAvailable,
		item.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update menu item",
			zap.Error(err),
			zap.String("item_id", item.ID.String()),
		)
		return fmt.Errorf("update menu item %s: %w", item.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("menu item %s not found", item.ID.String())
	}

	return nil
}

func (r *menuItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM menu_items WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete menu item",
			zap.Error(err),
			zap.String("item_id", id.String()),
		)
		return fmt.Errorf("delete menu item %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("menu item %s not found", id.String())
	}

	r.log.Info("Menu item deleted", zap.String("item_id", id.String()))
	return nil
}

func (r *menuItemRepository) BulkSetAvailability(ctx context.Context, ids []uuid.UUID, available bool) (int64, error) {
	query := `UPDATE menu_items SET is_available = $2, updated_at = NOW() WHERE id = ANY($1)`

	result, err := r.db.Exec(ctx, query, ids, available)
	if err != nil {
		r.log.Error("Failed to bulk update availability",
			zap.Error(err),
			zap.Int("item_count", len(ids)),
			zap.Bool("available", available),
		)
		return 0, fmt.Errorf("bulk update availability: %w", err)
	}

	return result.RowsAffected(), nil
}
