package payment

import (
	"context"
)

// Intent statuses we care about. Mirrors the processor's vocabulary.
const (
	StatusRequiresPayment = "requires_payment_method"
	StatusSucceeded       = "succeeded"
	StatusCanceled        = "canceled"
)

// IntentParams describes a payment intent to create. Amount is in minor
// currency units (pence).
type IntentParams struct {
	Amount   int64
	Currency string
	Metadata map[string]string
}

// Intent is the processor-side payment object
type Intent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
	Status       string
	Metadata     map[string]string
}

// Gateway abstracts the card payment processor so the ticket flow can run
// against Stripe in production and an in-memory fake in demo mode and tests.
type Gateway interface {
	CreateIntent(ctx context.Context, params *IntentParams) (*Intent, error)
	GetIntent(ctx context.Context, id string) (*Intent, error)
}
