package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go"
	"github.com/stripe/stripe-go/client"
	"go.uber.org/zap"
)

// StripeGateway implements Gateway on top of the Stripe API
type StripeGateway struct {
	api *client.API
	log *zap.Logger
}

func NewStripeGateway(secretKey string, log *zap.Logger) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)

	return &StripeGateway{
		api: api,
		log: log.With(zap.String("gateway", "stripe")),
	}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, p *IntentParams) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(p.Amount),
		Currency: stripe.String(p.Currency),
	}
	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}
	params.SetIdempotencyKey(uuid.New().String())

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		g.log.Error("Failed to create payment intent",
			zap.Error(err),
			zap.Int64("amount", p.Amount),
		)
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	g.log.Info("Payment intent created",
		zap.String("intent_id", pi.ID),
		zap.Int64("amount", p.Amount),
	)

	return fromStripeIntent(pi), nil
}

func (g *StripeGateway) GetIntent(ctx context.Context, id string) (*Intent, error) {
	pi, err := g.api.PaymentIntents.Get(id, nil)
	if err != nil {
		g.log.Error("Failed to retrieve payment intent",
			zap.Error(err),
			zap.String("intent_id", id),
		)
		return nil, fmt.Errorf("retrieve payment intent %s: %w", id, err)
	}

	return fromStripeIntent(pi), nil
}

func fromStripeIntent(pi *stripe.PaymentIntent) *Intent {
	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Status:       string(pi.Status),
		Metadata:     pi.Metadata,
	}
}
