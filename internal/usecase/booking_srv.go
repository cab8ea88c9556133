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

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*response.BookingResponse, error)
	GetBookings(ctx context.Context) ([]response.BookingResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	bookingAt, err := time.Parse(time.RFC3339, req.BookingAt)
	if err != nil {
		return nil, fmt.Errorf("invalid booking time, expected RFC 3339")
	}

	now := time.Now()
	if bookingAt.Before(now) {
		return nil, fmt.Errorf("booking time must be in the future")
	}

	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		PartySize:     req.PartySize,
		BookingAt:     bookingAt,
		Notes:         req.Notes,
		Status:        entity.BookingStatusPending,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking", zap.Error(err))
		return nil, fmt.Errorf("failed to create booking")
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.Int("party_size", booking.PartySize),
		zap.Time("booking_at", booking.BookingAt),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id uuid.UUID) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", id.String()))
		return nil, fmt.Errorf("failed to find booking")
	}
	if booking == nil {
		return nil, fmt.Errorf("booking not found")
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetBookings(ctx context.Context) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("failed to list bookings")
	}

	resp := make([]response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		resp = append(resp, response.BookingToResponse(booking))
	}
	return resp, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, id uuid.UUID, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", id.String()))
		return nil, fmt.Errorf("failed to find booking")
	}
	if booking == nil {
		return nil, fmt.Errorf("booking not found")
	}

	next := entity.BookingStatus(req.Status)
	if !booking.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("cannot change booking status from %s to %s", booking.Status, next)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, id, next); err != nil {
		s.log.Error("Failed to update booking status", zap.Error(err), zap.String("booking_id", id.String()))
		return nil, fmt.Errorf("failed to update booking status")
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", id.String()),
		zap.String("from", string(booking.Status)),
		zap.String("to", string(next)),
	)

	booking.Status = next
	resp := response.BookingToResponse(booking)
	return &resp, nil
}
