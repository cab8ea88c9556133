package entity

import (
	"time"

	"github.com/google/uuid"
)

type EventCategory struct {
	BaseSimple
	Name string `db:"name"`
}

type Event struct {
	Base
	CategoryID       *uuid.UUID `db:"category_id"`
	Title            string     `db:"title"`
	Description      *string    `db:"description"`
	EventDate        time.Time  `db:"event_date"`
	ImageURL         *string    `db:"image_url"`
	TicketPrice      float64    `db:"ticket_price"`
	MaxAttendees     int        `db:"max_attendees"`
	CurrentAttendees int        `db:"current_attendees"`
	IsPublished      bool       `db:"is_published"`
}

// RemainingCapacity reports how many tickets can still be sold
func (e *Event) RemainingCapacity() int {
	remaining := e.MaxAttendees - e.CurrentAttendees
	if remaining < 0 {
		return 0
	}
	return remaining
}

type TicketSaleStatus string

const (
	TicketSaleStatusConfirmed TicketSaleStatus = "confirmed"
	TicketSaleStatusRefunded  TicketSaleStatus = "refunded"
)

// TicketSale rows are numbered by the database; the confirmation number
// shown to the customer is derived from that sequence.
type TicketSale struct {
	ID            int64            `db:"id"`
	EventID       uuid.UUID        `db:"event_id"`
	CustomerName  string           `db:"customer_name"`
	CustomerEmail string           `db:"customer_email"`
	CustomerPhone *string          `db:"customer_phone"`
	Quantity      int              `db:"quantity"`
	UnitPrice     float64          `db:"unit_price"`
	TotalAmount   float64          `db:"total_amount"`
	PaymentRef    string           `db:"payment_ref"`
	Status        TicketSaleStatus `db:"status"`
	PurchasedAt   time.Time        `db:"purchased_at"`
}
