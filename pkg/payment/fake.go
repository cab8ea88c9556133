package payment

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// FakeGateway is an in-memory Gateway used in demo mode and in tests.
// Intents start in requires_payment_method; MarkSucceeded simulates the
// client completing card entry.
type FakeGateway struct {
	mu      sync.RWMutex
	intents map[string]*Intent
}

func NewFakeGateway() *FakeGateway {
	return &FakeGateway{
		intents: make(map[string]*Intent),
	}
}

func (g *FakeGateway) CreateIntent(ctx context.Context, p *IntentParams) (*Intent, error) {
	if p.Amount <= 0 {
		return nil, fmt.Errorf("amount must be greater than 0")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	id := "pi_" + uuid.New().String()
	metadata := make(map[string]string, len(p.Metadata))
	for k, v := range p.Metadata {
		metadata[k] = v
	}

	intent := &Intent{
		ID:           id,
		ClientSecret: id + "_secret_" + uuid.New().String(),
		Amount:       p.Amount,
		Currency:     p.Currency,
		Status:       StatusRequiresPayment,
		Metadata:     metadata,
	}
	g.intents[id] = intent

	return copyIntent(intent), nil
}

func (g *FakeGateway) GetIntent(ctx context.Context, id string) (*Intent, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	intent, ok := g.intents[id]
	if !ok {
		return nil, fmt.Errorf("no such payment intent: %s", id)
	}

	return copyIntent(intent), nil
}

// MarkSucceeded flips an intent to succeeded, as the card flow would
func (g *FakeGateway) MarkSucceeded(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	intent, ok := g.intents[id]
	if !ok {
		return fmt.Errorf("no such payment intent: %s", id)
	}
	intent.Status = StatusSucceeded

	return nil
}

func copyIntent(in *Intent) *Intent {
	out := *in
	out.Metadata = make(map[string]string, len(in.Metadata))
	for k, v := range in.Metadata {
		out.Metadata[k] = v
	}
	return &out
}
