package repository

import (
	"context"
	"fmt"

	"coffee-house/internal/data/entity"
	"coffee-house/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	FindAll(ctx context.Context) ([]*entity.Message, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountUnread(ctx context.Context) (int64, error)
}

type messageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMessageRepository(db database.PgxIface, log *zap.Logger) MessageRepository {
	return &messageRepository{
		db:  db,
		log: log.With(zap.String("repository", "message")),
	}
}

func (r *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	query := `
		INSERT INTO messages (id, name, email, subject, body, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		message.ID,
		message.Name,
		message.Email,
		message.Subject,
		message.Body,
		message.IsRead,
		message.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create message",
			zap.Error(err),
			zap.String("email", message.Email),
		)
		return fmt.Errorf("create message: %w", err)
	}

	return nil
}

func (r *messageRepository) FindAll(ctx context.Context) ([]*entity.Message, error) {
	query := `
		SELECT id, name, email, subject, body, is_read, created_at
		FROM messages
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find messages", zap.Error(err))
		return nil, fmt.Errorf("find messages: %w", err)
	}
	defer rows.Close()

	var messages []*entity.Message
	for rows.Next() {
		var message entity.Message
		err := rows.Scan(
			&message.ID,
			&message.Name,
			&message.Email,
			&message.Subject,
			&message.Body,
			&message.IsRead,
			&message.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan message row", zap.Error(err))
			return nil, fmt.Errorf("scan message row: %w", err)
		}
		messages = append(messages, &message)
	}

	return messages, nil
}

func (r *messageRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE messages SET is_read = TRUE WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to mark message read",
			zap.Error(err),
			zap.String("message_id", id.String()),
		)
		return fmt.Errorf("mark message %s read: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("message %s not found", id.String())
	}

	return nil
}

func (r *messageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM messages WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete message",
			zap.Error(err),
			zap.String("message_id", id.String()),
		)
		return fmt.Errorf("delete message %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("message %s not found", id.String())
	}

	return nil
}

func (r *messageRepository) CountUnread(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM messages WHERE is_read = FALSE`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count unread messages", zap.Error(err))
		return 0, fmt.Errorf("count unread messages: %w", err)
	}

	return count, nil
}
