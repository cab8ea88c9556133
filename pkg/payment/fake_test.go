package payment

import (
	"context"
	"testing"
)

func TestFakeGatewayLifecycle(t *testing.T) {
	gateway := NewFakeGateway()

	intent, err := gateway.CreateIntent(context.Background(), &IntentParams{
		Amount:   1500,
		Currency: "gbp",
		Metadata: map[string]string{"quantity": "1"},
	})
	if err != nil {
		t.Fatalf("CreateIntent: %v", err)
	}

	if intent.Status != StatusRequiresPayment {
		t.Errorf("status = %q, want %q", intent.Status, StatusRequiresPayment)
	}
	if intent.ClientSecret == "" {
		t.Error("client secret is empty")
	}

	if err := gateway.MarkSucceeded(intent.ID); err != nil {
		t.Fatalf("MarkSucceeded: %v", err)
	}

	fetched, err := gateway.GetIntent(context.Background(), intent.ID)
	if err != nil {
		t.Fatalf("GetIntent: %v", err)
	}
	if fetched.Status != StatusSucceeded {
		t.Errorf("status = %q, want %q", fetched.Status, StatusSucceeded)
	}
	if fetched.Metadata["quantity"] != "1" {
		t.Errorf("metadata lost: %v", fetched.Metadata)
	}
}

func TestFakeGatewayRejectsZeroAmount(t *testing.T) {
	gateway := NewFakeGateway()

	if _, err := gateway.CreateIntent(context.Background(), &IntentParams{Amount: 0, Currency: "gbp"}); err == nil {
		t.Error("zero amount accepted")
	}
}

func TestFakeGatewayReturnsCopies(t *testing.T) {
	gateway := NewFakeGateway()

	intent, err := gateway.CreateIntent(context.Background(), &IntentParams{
		Amount:   500,
		Currency: "gbp",
		Metadata: map[string]string{"event_id": "abc"},
	})
	if err != nil {
		t.Fatalf("CreateIntent: %v", err)
	}

	intent.Metadata["event_id"] = "tampered"

	fetched, _ := gateway.GetIntent(context.Background(), intent.ID)
	if fetched.Metadata["event_id"] != "abc" {
		t.Error("caller mutation leaked into the gateway")
	}
}

func TestFakeGatewayUnknownIntent(t *testing.T) {
	gateway := NewFakeGateway()

	if _, err := gateway.GetIntent(context.Background(), "pi_missing"); err == nil {
		t.Error("unknown intent returned without error")
	}
	if err := gateway.MarkSucceeded("pi_missing"); err == nil {
		t.Error("unknown intent marked succeeded")
	}
}
