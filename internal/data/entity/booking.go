package entity

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// CanTransitionTo mirrors the order guard: forward only, cancel before completion
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if next == BookingStatusCancelled {
		return s == BookingStatusPending || s == BookingStatusConfirmed
	}

	switch s {
	case BookingStatusPending:
		return next == BookingStatusConfirmed
	case BookingStatusConfirmed:
		return next == BookingStatusCompleted
	default:
		return false
	}
}

type Booking struct {
	Base
	CustomerName  string        `db:"customer_name"`
	CustomerEmail string        `db:"customer_email"`
	CustomerPhone *string       `db:"customer_phone"`
	PartySize     int           `db:"party_size"`
	BookingAt     time.Time     `db:"booking_at"`
	Notes         *string       `db:"notes"`
	Status        BookingStatus `db:"status"`
}
