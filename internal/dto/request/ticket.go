package request

// Quantity is capped at 10 tickets per purchase
type CreatePaymentIntentRequest struct {
	EventID       string  `json:"event_id" validate:"required,uuid4"`
	Quantity      int     `json:"quantity" validate:"required,min=1,max=10"`
	CustomerName  string  `json:"customer_name" validate:"required,min=2,max=100"`
	CustomerEmail string  `json:"customer_email" validate:"required,email"`
	CustomerPhone *string `json:"customer_phone,omitempty"`
}

type ConfirmTicketPurchaseRequest struct {
	PaymentIntentID string `json:"payment_intent_id" validate:"required"`
}
