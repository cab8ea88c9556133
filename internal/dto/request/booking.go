package request

type CreateBookingRequest struct {
	CustomerName  string  `json:"customer_name" validate:"required,min=2,max=100"`
	CustomerEmail string  `json:"customer_email" validate:"required,email"`
	CustomerPhone *string `json:"customer_phone,omitempty"`
	PartySize     int     `json:"party_size" validate:"required,min=1,max=20"`
	BookingAt     string  `json:"booking_at" validate:"required"` // RFC 3339
	Notes         *string `json:"notes,omitempty"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}
