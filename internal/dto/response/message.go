package response

import (
	"time"

	"coffee-house/internal/data/entity"
)

type MessageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   *string   `json:"subject,omitempty"`
	Body      string    `json:"body"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func MessageToResponse(message *entity.Message) MessageResponse {
	return MessageResponse{
		ID:        message.ID.String(),
		Name:      message.Name,
		Email:     message.Email,
		Subject:   message.Subject,
		Body:      message.Body,
		IsRead:    message.IsRead,
		CreatedAt: message.CreatedAt,
	}
}
