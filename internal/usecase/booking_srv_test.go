package usecase

import (
	"context"
	"testing"
	"time"

	"coffee-house/internal/data/entity"
	"coffee-house/internal/data/repository"
	"coffee-house/internal/data/repository/demo"
	"coffee-house/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newBookingFixture(t *testing.T) (*repository.Repository, BookingService) {
	t.Helper()
	repo := demo.NewRepository(zap.NewNop())
	return repo, NewBookingService(repo, zap.NewNop())
}

func bookingRequest(partySize int, at time.Time) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		CustomerName:  "Grace Hopper",
		CustomerEmail: "grace@example.com",
		PartySize:     partySize,
		BookingAt:     at.Format(time.RFC3339),
	}
}

func TestCreateBooking(t *testing.T) {
	_, service := newBookingFixture(t)

	resp, err := service.CreateBooking(context.Background(), bookingRequest(4, time.Now().Add(48*time.Hour)))
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	if resp.Status != entity.BookingStatusPending {
		t.Errorf("status = %s, want pending", resp.Status)
	}
	if resp.PartySize != 4 {
		t.Errorf("party size = %d, want 4", resp.PartySize)
	}
}

func TestCreateBookingRejectsPastTime(t *testing.T) {
	_, service := newBookingFixture(t)

	if _, err := service.CreateBooking(context.Background(), bookingRequest(2, time.Now().Add(-time.Hour))); err == nil {
		t.Error("past booking accepted")
	}
}

func TestCreateBookingPartySizeBounds(t *testing.T) {
	_, service := newBookingFixture(t)
	at := time.Now().Add(48 * time.Hour)

	for _, size := range []int{0, 21} {
		if _, err := service.CreateBooking(context.Background(), bookingRequest(size, at)); err == nil {
			t.Errorf("party size %d accepted", size)
		}
	}

	if _, err := service.CreateBooking(context.Background(), bookingRequest(20, at)); err != nil {
		t.Errorf("party size 20 rejected: %v", err)
	}
}

func TestBookingStatusTransitions(t *testing.T) {
	_, service := newBookingFixture(t)

	resp, err := service.CreateBooking(context.Background(), bookingRequest(2, time.Now().Add(24*time.Hour)))
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	bookingID := uuid.MustParse(resp.ID)

	// completion requires confirmation first
	if _, err := service.UpdateStatus(context.Background(), bookingID, &request.UpdateBookingStatusRequest{Status: "completed"}); err == nil {
		t.Error("pending to completed accepted")
	}

	if _, err := service.UpdateStatus(context.Background(), bookingID, &request.UpdateBookingStatusRequest{Status: "confirmed"}); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if _, err := service.UpdateStatus(context.Background(), bookingID, &request.UpdateBookingStatusRequest{Status: "completed"}); err != nil {
		t.Fatalf("complete: %v", err)
	}

	// completed bookings never move again
	if _, err := service.UpdateStatus(context.Background(), bookingID, &request.UpdateBookingStatusRequest{Status: "cancelled"}); err == nil {
		t.Error("completed to cancelled accepted")
	}
}
