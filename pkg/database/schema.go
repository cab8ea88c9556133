package database

import (
	"context"
	"fmt"

	"coffee-house/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Idempotent table creation, run with the -init-db flag. Safe to re-run.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'staff',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id),
		token UUID NOT NULL UNIQUE,
		expires_at TIMESTAMPTZ NOT NULL,
		revoked_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS menu_categories (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		display_order INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id UUID PRIMARY KEY,
		category_id UUID REFERENCES menu_categories(id),
		name TEXT NOT NULL,
		description TEXT,
		price NUMERIC(8,2) NOT NULL,
		image_url TEXT,
		is_available BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		customer_name TEXT NOT NULL,
		customer_email TEXT NOT NULL,
		customer_phone TEXT,
		order_type TEXT NOT NULL,
		delivery_address TEXT,
		total_amount NUMERIC(8,2) NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id UUID PRIMARY KEY,
		order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		menu_item_id UUID,
		item_name TEXT NOT NULL,
		unit_price NUMERIC(8,2) NOT NULL,
		quantity INT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id UUID PRIMARY KEY,
		customer_name TEXT NOT NULL,
		customer_email TEXT NOT NULL,
		customer_phone TEXT,
		party_size INT NOT NULL,
		booking_at TIMESTAMPTZ NOT NULL,
		notes TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS event_categories (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id UUID PRIMARY KEY,
		category_id UUID REFERENCES event_categories(id),
		title TEXT NOT NULL,
		description TEXT,
		event_date TIMESTAMPTZ NOT NULL,
		image_url TEXT,
		ticket_price NUMERIC(8,2) NOT NULL DEFAULT 0,
		max_attendees INT NOT NULL DEFAULT 0,
		current_attendees INT NOT NULL DEFAULT 0,
		is_published BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS ticket_sales (
		id BIGSERIAL PRIMARY KEY,
		event_id UUID NOT NULL REFERENCES events(id),
		customer_name TEXT NOT NULL,
		customer_email TEXT NOT NULL,
		customer_phone TEXT,
		quantity INT NOT NULL,
		unit_price NUMERIC(8,2) NOT NULL,
		total_amount NUMERIC(8,2) NOT NULL,
		payment_ref TEXT NOT NULL UNIQUE,
		status TEXT NOT NULL DEFAULT 'confirmed',
		purchased_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS blog_categories (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS blog_posts (
		id UUID PRIMARY KEY,
		category_id UUID REFERENCES blog_categories(id),
		title TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		excerpt TEXT,
		content TEXT NOT NULL,
		image_url TEXT,
		is_published BOOLEAN NOT NULL DEFAULT FALSE,
		published_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS messages (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		subject TEXT,
		body TEXT NOT NULL,
		is_read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL
	)`,
}

// InitSchema creates all tables if they do not exist yet
func InitSchema(ctx context.Context, db PgxIface, log *zap.Logger) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	log.Info("Database schema initialized")
	return nil
}

// Seed inserts the default admin account and starter categories. Only
// touches tables that are still empty, so re-running is harmless.
func Seed(ctx context.Context, db PgxIface, log *zap.Logger) error {
	var userCount int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&userCount); err != nil {
		return fmt.Errorf("seed: count users: %w", err)
	}

	if userCount == 0 {
		hash, err := utils.HashPassword("changeme")
		if err != nil {
			return fmt.Errorf("seed: hash admin password: %w", err)
		}
		_, err = db.Exec(ctx, `
			INSERT INTO users (id, username, email, password, role, is_active, created_at, updated_at)
			VALUES ($1, 'admin', 'admin@coffeehouse.local', $2, 'admin', TRUE, NOW(), NOW())
		`, uuid.New(), hash)
		if err != nil {
			return fmt.Errorf("seed: create admin user: %w", err)
		}
		log.Info("Seeded admin account", zap.String("email", "admin@coffeehouse.local"))
	}

	var categoryCount int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM menu_categories`).Scan(&categoryCount); err != nil {
		return fmt.Errorf("seed: count menu categories: %w", err)
	}

	if categoryCount == 0 {
		categories := []string{"Coffee", "Tea", "Pastries", "Sandwiches"}
		for i, name := range categories {
			_, err := db.Exec(ctx, `
				INSERT INTO menu_categories (id, name, display_order, created_at)
				VALUES ($1, $2, $3, NOW())
			`, uuid.New(), name, i)
			if err != nil {
				return fmt.Errorf("seed: create menu category %s: %w", name, err)
			}
		}
		log.Info("Seeded menu categories", zap.Int("count", len(categories)))
	}

	return nil
}
