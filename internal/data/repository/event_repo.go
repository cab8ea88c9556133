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

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	FindAll(ctx context.Context) ([]*entity.Event, error)
	FindPublished(ctx context.Context) ([]*entity.Event, error)
	Update(ctx context.Context, event *entity.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementAttendees(ctx context.Context, eventID uuid.UUID, quantity int) error
}

type eventRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEventRepository(db database.PgxIface, log *zap.Logger) EventRepository {
	return &eventRepository{
		db:  db,
		log: log.With(zap.String("repository", "event")),
	}
}

const eventColumns = `id, category_id, title, description, event_date, image_url, ticket_price, max_attendees, current_attendees, is_published, created_at, updated_at`

func scanEvent(row pgx.Row) (*entity.Event, error) {
	var event entity.Event
	err := row.Scan(
		&event.ID,
		&event.CategoryID,
		&event.Title,
		&event.Description,
		&event.EventDate,
		&event.ImageURL,
		&event.TicketPrice,
		&event.MaxAttendees,
		&event.CurrentAttendees,
		&event.IsPublished,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO events (id, category_id, title, description, event_date, image_url, ticket_price, max_attendees, current_attendees, is_published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		event.ID,
		event.CategoryID,
		event.Title,
		event.Description,
		event.EventDate,
		event.ImageURL,
		event.TicketPrice,
		event.MaxAttendees,
		event.CurrentAttendees,
		event.IsPublished,
		event.CreatedAt,
		event.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create event",
			zap.Error(err),
			zap.String("title", event.Title),
		)
		return fmt.Errorf("create event %s: %w", event.Title, err)
	}

	return nil
}

func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	event, err := scanEvent(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find event by ID",
			zap.Error(err),
			zap.String("event_id", id.String()),
		)
		return nil, fmt.Errorf("find event by ID %s: %w", id.String(), err)
	}

	return event, nil
}

func (r *eventRepository) FindAll(ctx context.Context) ([]*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY event_date`
	return r.queryEvents(ctx, query)
}

func (r *eventRepository) FindPublished(ctx context.Context) ([]*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE is_published = TRUE ORDER BY event_date`
	return r.queryEvents(ctx, query)
}

func (r *eventRepository) queryEvents(ctx context.Context, query string, args ...any) ([]*entity.Event, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query events", zap.Error(err))
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []*entity.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			r.log.Error("Failed to scan event row", zap.Error(err))
			return nil, fmt.Errorf("scan event row: %w", err)
		}
		events = append(events, event)
	}

	return events, nil
}

func (r *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	query := `
		UPDATE events
		SET category_id = $2, title = $3, description = $4, event_date = $5,
		    image_url = $6, ticket_price = $7, max_attendees = $8,
		    is_published = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		event.ID,
		event.CategoryID,
		event.Title,
		event.Description,
		event.EventDate,
		event.ImageURL,
		event.TicketPrice,
		event.MaxAttendees,
		event.IsPublished,
		event.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update event",
			zap.Error(err),
			zap.String("event_id", event.ID.String()),
		)
		return fmt.Errorf("update event %s: %w", event.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("event %s not found", event.ID.String())
	}

	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM events WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete event",
			zap.Error(err),
			zap.String("event_id", id.String()),
		)
		return fmt.Errorf("delete event %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("event %s not found", id.String())
	}

	r.log.Info("Event deleted", zap.String("event_id", id.String()))
	return nil
}

// IncrementAttendees adds the purchased quantity to the running attendee
// count in a single UPDATE so concurrent confirmations cannot clobber
// each other's totals.
func (r *eventRepository) IncrementAttendees(ctx context.Context, eventID uuid.UUID, quantity int) error {
	query := `UPDATE events SET current_attendees = current_attendees + $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, eventID, quantity)
	if err != nil {
		r.log.Error("Failed to increment attendees",
			zap.Error(err),
			zap.String("event_id", eventID.String()),
			zap.Int("quantity", quantity),
		)
		return fmt.Errorf("increment attendees for event %s: %w", eventID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("event %s not found", eventID.String())
	}

	return nil
}
