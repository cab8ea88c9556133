package response

import (
	"time"

	"coffee-house/internal/data/entity"
)

type BookingResponse struct {
	ID            string               `json:"id"`
	CustomerName  string               `json:"customer_name"`
	CustomerEmail string               `json:"customer_email"`
	CustomerPhone *string              `json:"customer_phone,omitempty"`
	PartySize     int                  `json:"party_size"`
	BookingAt     time.Time            `json:"booking_at"`
	Notes         *string              `json:"notes,omitempty"`
	Status        entity.BookingStatus `json:"status"`
	CreatedAt     time.Time            `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:            booking.ID.String(),
		CustomerName:  booking.CustomerName,
		CustomerEmail: booking.CustomerEmail,
		CustomerPhone: booking.CustomerPhone,
		PartySize:     booking.PartySize,
		BookingAt:     booking.BookingAt,
		Notes:         booking.Notes,
		Status:        booking.Status,
		CreatedAt:     booking.CreatedAt,
	}
}
