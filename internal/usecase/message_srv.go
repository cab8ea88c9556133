package usecase

import (
	"context"
	"fmt"
	"time"

	"coffee-house/internal/data/entity"
	"coffee-house/internal/data/repository"
	"coffee-house/internal/dto/request"
	"coffee-house/internal/dto/response"
	"coffee-house/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MessageService interface {
	CreateMessage(ctx context.Context, req *request.CreateMessageRequest) (*response.MessageResponse, error)
	GetMessages(ctx context.Context) ([]response.MessageResponse, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	DeleteMessage(ctx context.Context, id uuid.UUID) error
}

type messageService struct {
	messages repository.MessageRepository
	log      *zap.Logger
}

func NewMessageService(messages repository.MessageRepository, log *zap.Logger) MessageService {
	return &messageService{
		messages: messages,
		log:      log.With(zap.String("service", "message")),
	}
}

func (s *messageService) CreateMessage(ctx context.Context, req *request.CreateMessageRequest) (*response.MessageResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	message := &entity.Message{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Body,
	}

	if err := s.messages.Create(ctx, message); err != nil {
		s.log.Error("Failed to save message", zap.Error(err))
		return nil, fmt.Errorf("failed to save message")
	}

	s.log.Info("Message received", zap.String("message_id", message.ID.String()), zap.String("email", message.Email))

	resp := response.MessageToResponse(message)
	return &resp, nil
}

func (s *messageService) GetMessages(ctx context.Context) ([]response.MessageResponse, error) {
	messages, err := s.messages.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list messages", zap.Error(err))
		return nil, fmt.Errorf("failed to list messages")
	}

	resp := make([]response.MessageResponse, 0, len(messages))
	for _, message := range messages {
		resp = append(resp, response.MessageToResponse(message))
	}
	return resp, nil
}

func (s *messageService) MarkRead(ctx context.Context, id uuid.UUID) error {
	if err := s.messages.MarkRead(ctx, id); err != nil {
		s.log.Error("Failed to mark message read", zap.Error(err), zap.String("message_id", id.String()))
		return fmt.Errorf("message not found")
	}
	return nil
}

func (s *messageService) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	if err := s.messages.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete message", zap.Error(err), zap.String("message_id", id.String()))
		return fmt.Errorf("message not found")
	}
	return nil
}
