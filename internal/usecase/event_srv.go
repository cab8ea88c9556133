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

type EventService interface {
	CreateCategory(ctx context.Context, req *request.CreateEventCategoryRequest) (*response.EventCategoryResponse, error)
	GetCategories(ctx context.Context) ([]response.EventCategoryResponse, error)
	CreateEvent(ctx context.Context, req *request.CreateEventRequest) (*response.EventResponse, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*response.EventResponse, error)
	GetEvents(ctx context.Context) ([]response.EventResponse, error)
	GetPublishedEvents(ctx context.Context) ([]response.EventResponse, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, req *request.UpdateEventRequest) (*response.EventResponse, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error
}

type eventService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewEventService(repo *repository.Repository, log *zap.Logger) EventService {
	return &eventService{
		repo: repo,
		log:  log.With(zap.String("service", "event")),
	}
}

func (s *eventService) CreateCategory(ctx context.Context, req *request.CreateEventCategoryRequest) (*response.EventCategoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	category := &entity.EventCategory{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name: req.Name,
	}

	if err := s.repo.EventCategory.Create(ctx, category); err != nil {
		s.log.Error("Failed to create event category", zap.Error(err))
		return nil, fmt.Errorf("failed to create event category")
	}

	resp := response.EventCategoryToResponse(category)
	return &resp, nil
}

func (s *eventService) GetCategories(ctx context.Context) ([]response.EventCategoryResponse, error) {
	categories, err := s.repo.EventCategory.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list event categories", zap.Error(err))
		return nil, fmt.Errorf("failed to list event categories")
	}

	resp := make([]response.EventCategoryResponse, 0, len(categories))
	for _, category := range categories {
		resp = append(resp, response.EventCategoryToResponse(category))
	}
	return resp, nil
}

func (s *eventService) CreateEvent(ctx context.Context, req *request.CreateEventRequest) (*response.EventResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		return nil, fmt.Errorf("invalid event date, expected RFC 3339")
	}

	now := time.Now()
	event := &entity.Event{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:        req.Title,
		Description:  req.Description,
		EventDate:    eventDate,
		ImageURL:     req.ImageURL,
		TicketPrice:  req.TicketPrice,
		MaxAttendees: req.MaxAttendees,
		IsPublished:  req.IsPublished,
	}

	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category id")
		}
		event.CategoryID = &categoryID
	}

	if err := s.repo.Event.Create(ctx, event); err != nil {
		s.log.Error("Failed to create event", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("failed to create event")
	}

	s.log.Info("Event created", zap.String("event_id", event.ID.String()), zap.String("title", event.Title))

	resp := response.EventToResponse(event)
	return &resp, nil
}

func (s *eventService) GetEvent(ctx context.Context, id uuid.UUID) (*response.EventResponse, error) {
	event, err := s.repo.Event.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find event", zap.Error(err), zap.String("event_id", id.String()))
		return nil, fmt.Errorf("failed to find event")
	}
	if event == nil {
		return nil, fmt.Errorf("event not found")
	}

	resp := response.EventToResponse(event)
	return &resp, nil
}

func (s *eventService) GetEvents(ctx context.Context) ([]response.EventResponse, error) {
	events, err := s.repo.Event.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list events", zap.Error(err))
		return nil, fmt.Errorf("failed to list events")
	}

	resp := make([]response.EventResponse, 0, len(events))
	for _, event := range events {
		resp = append(resp, response.EventToResponse(event))
	}
	return resp, nil
}

func (s *eventService) GetPublishedEvents(ctx context.Context) ([]response.EventResponse, error) {
	events, err := s.repo.Event.FindPublished(ctx)
	if err != nil {
		s.log.Error("Failed to list published events", zap.Error(err))
		return nil, fmt.Errorf("failed to list events")
	}

	resp := make([]response.EventResponse, 0, len(events))
	for _, event := range events {
		resp = append(resp, response.EventToResponse(event))
	}
	return resp, nil
}

// UpdateEvent rewrites the event's details. The attendee counter is owned
// by the ticket workflow and is never touched here.
func (s *eventService) UpdateEvent(ctx context.Context, id uuid.UUID, req *request.UpdateEventRequest) (*response.EventResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	event, err := s.repo.Event.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find event", zap.Error(err), zap.String("event_id", id.String()))
		return nil, fmt.Errorf("failed to find event")
	}
	if event == nil {
		return nil, fmt.Errorf("event not found")
	}

	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		return nil, fmt.Errorf("invalid event date, expected RFC 3339")
	}

	event.Title = req.Title
	event.Description = req.Description
	event.EventDate = eventDate
	event.ImageURL = req.ImageURL
	event.TicketPrice = req.TicketPrice
	event.MaxAttendees = req.MaxAttendees
	event.IsPublished = req.IsPublished
	event.UpdatedAt = time.Now()
	event.CategoryID = nil
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category id")
		}
		event.CategoryID = &categoryID
	}

	if err := s.repo.Event.Update(ctx, event); err != nil {
		s.log.Error("Failed to update event", zap.Error(err), zap.String("event_id", id.String()))
		return nil, fmt.Errorf("failed to update event")
	}

	resp := response.EventToResponse(event)
	return &resp, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Event.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete event", zap.Error(err), zap.String("event_id", id.String()))
		return fmt.Errorf("event not found")
	}

	s.log.Info("Event deleted", zap.String("event_id", id.String()))
	return nil
}
