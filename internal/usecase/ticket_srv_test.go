package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"coffee-house/internal/data/entity"
	"coffee-house/internal/data/repository"
	"coffee-house/internal/data/repository/demo"
	"coffee-house/internal/dto/request"
	"coffee-house/pkg/payment"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newTicketFixture(t *testing.T) (*repository.Repository, *payment.FakeGateway, TicketService) {
	t.Helper()
	repo := demo.NewRepository(zap.NewNop())
	gateway := payment.NewFakeGateway()
	service := NewTicketService(repo, gateway, zap.NewNop())
	return repo, gateway, service
}

func createEvent(t *testing.T, repo *repository.Repository, price float64, maxAttendees, currentAttendees int, published bool) *entity.Event {
	t.Helper()
	now := time.Now()
	event := &entity.Event{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:            "Latte Art Evening",
		EventDate:        now.Add(7 * 24 * time.Hour),
		TicketPrice:      price,
		MaxAttendees:     maxAttendees,
		CurrentAttendees: currentAttendees,
		IsPublished:      published,
	}
	if err := repo.Event.Create(context.Background(), event); err != nil {
		t.Fatalf("create event: %v", err)
	}
	return event
}

func intentRequest(eventID uuid.UUID, quantity int) *request.CreatePaymentIntentRequest {
	return &request.CreatePaymentIntentRequest{
		EventID:       eventID.String(),
		Quantity:      quantity,
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
	}
}

func TestCreatePaymentIntentAmountInPence(t *testing.T) {
	repo, _, service := newTicketFixture(t)
	event := createEvent(t, repo, 5.00, 20, 0, true)

	resp, err := service.CreatePaymentIntent(context.Background(), intentRequest(event.ID, 2))
	if err != nil {
		t.Fatalf("CreatePaymentIntent: %v", err)
	}

	if resp.Amount != 1000 {
		t.Errorf("amount = %d pence, want 1000", resp.Amount)
	}
	if resp.Currency != "gbp" {
		t.Errorf("currency = %q, want gbp", resp.Currency)
	}
	if resp.ClientSecret == "" {
		t.Error("client secret is empty")
	}
}

func TestCreatePaymentIntentQuantityBounds(t *testing.T) {
	repo, _, service := newTicketFixture(t)
	event := createEvent(t, repo, 10.00, 100, 0, true)

	for _, quantity := range []int{0, -1, 11} {
		if _, err := service.CreatePaymentIntent(context.Background(), intentRequest(event.ID, quantity)); err == nil {
			t.Errorf("quantity %d accepted, want rejection", quantity)
		}
	}

	if _, err := service.CreatePaymentIntent(context.Background(), intentRequest(event.ID, 10)); err != nil {
		t.Errorf("quantity 10 rejected: %v", err)
	}
}

func TestCreatePaymentIntentCapacity(t *testing.T) {
	repo, _, service := newTicketFixture(t)
	event := createEvent(t, repo, 15.00, 10, 8, true)

	_, err := service.CreatePaymentIntent(context.Background(), intentRequest(event.ID, 3))
	if err == nil {
		t.Fatal("over-capacity intent accepted")
	}
	if err.Error() != "Only 2 tickets remaining" {
		t.Errorf("error = %q, want %q", err.Error(), "Only 2 tickets remaining")
	}

	// exactly the remaining capacity is fine
	if _, err := service.CreatePaymentIntent(context.Background(), intentRequest(event.ID, 2)); err != nil {
		t.Errorf("intent for remaining capacity rejected: %v", err)
	}
}

func TestCreatePaymentIntentSoldOut(t *testing.T) {
	repo, _, service := newTicketFixture(t)
	event := createEvent(t, repo, 15.00, 10, 10, true)

	_, err := service.CreatePaymentIntent(context.Background(), intentRequest(event.ID, 1))
	if err == nil || err.Error() != "event is sold out" {
		t.Errorf("err = %v, want sold out", err)
	}
}

func TestCreatePaymentIntentUnpublishedEvent(t *testing.T) {
	repo, _, service := newTicketFixture(t)
	event := createEvent(t, repo, 15.00, 10, 0, false)

	_, err := service.CreatePaymentIntent(context.Background(), intentRequest(event.ID, 1))
	if err == nil || err.Error() != "event is not available" {
		t.Errorf("err = %v, want not available", err)
	}
}

func TestCreatePaymentIntentFreeEvent(t *testing.T) {
	repo, _, service := newTicketFixture(t)
	event := createEvent(t, repo, 0, 10, 0, true)

	_, err := service.CreatePaymentIntent(context.Background(), intentRequest(event.ID, 1))
	if err == nil || err.Error() != "tickets are not on sale for this event" {
		t.Errorf("err = %v, want not on sale", err)
	}
}

func TestCreatePaymentIntentWritesNothing(t *testing.T) {
	repo, _, service := newTicketFixture(t)
	event := createEvent(t, repo, 12.00, 10, 0, true)

	if _, err := service.CreatePaymentIntent(context.Background(), intentRequest(event.ID, 4)); err != nil {
		t.Fatalf("CreatePaymentIntent: %v", err)
	}

	updated, err := repo.Event.FindByID(context.Background(), event.ID)
	if err != nil {
		t.Fatalf("find event: %v", err)
	}
	if updated.CurrentAttendees != 0 {
		t.Errorf("attendees moved to %d before payment", updated.CurrentAttendees)
	}

	sales, err := repo.TicketSale.FindAll(context.Background())
	if err != nil {
		t.Fatalf("list sales: %v", err)
	}
	if len(sales) != 0 {
		t.Errorf("found %d sales before payment", len(sales))
	}
}

func TestConfirmPurchaseRequiresSucceededPayment(t *testing.T) {
	repo, _, service := newTicketFixture(t)
	event := createEvent(t, repo, 12.00, 10, 0, true)

	resp, err := service.CreatePaymentIntent(context.Background(), intentRequest(event.ID, 2))
	if err != nil {
		t.Fatalf("CreatePaymentIntent: %v", err)
	}

	// payment never completed by the client
	_, err = service.ConfirmPurchase(context.Background(), &request.ConfirmTicketPurchaseRequest{
		PaymentIntentID: resp.PaymentIntentID,
	})
	if err == nil || err.Error() != "payment has not succeeded" {
		t.Errorf("err = %v, want payment has not succeeded", err)
	}

	sales, _ := repo.TicketSale.FindAll(context.Background())
	if len(sales) != 0 {
		t.Errorf("found %d sales for unpaid intent", len(sales))
	}
}

func TestConfirmPurchaseRecordsSale(t *testing.T) {
	repo, gateway, service := newTicketFixture(t)
	event := createEvent(t, repo, 15.00, 12, 5, true)

	intent, err := service.CreatePaymentIntent(context.Background(), intentRequest(event.ID, 3))
	if err != nil {
		t.Fatalf("CreatePaymentIntent: %v", err)
	}
	if err := gateway.MarkSucceeded(intent.PaymentIntentID); err != nil {
		t.Fatalf("MarkSucceeded: %v", err)
	}

	confirmation, err := service.ConfirmPurchase(context.Background(), &request.ConfirmTicketPurchaseRequest{
		PaymentIntentID: intent.PaymentIntentID,
	})
	if err != nil {
		t.Fatalf("ConfirmPurchase: %v", err)
	}

	if !strings.HasPrefix(confirmation.ConfirmationNumber, "TKT-") || len(confirmation.ConfirmationNumber) != 10 {
		t.Errorf("confirmation number = %q, want TKT- prefix with six digits", confirmation.ConfirmationNumber)
	}
	if confirmation.EventTitle != event.Title {
		t.Errorf("event title = %q, want %q", confirmation.EventTitle, event.Title)
	}
	if confirmation.Quantity != 3 {
		t.Errorf("quantity = %d, want 3", confirmation.Quantity)
	}
	if confirmation.TotalAmount != 45.00 {
		t.Errorf("total = %.2f, want 45.00", confirmation.TotalAmount)
	}

	sale, err := repo.TicketSale.FindByPaymentRef(context.Background(), intent.PaymentIntentID)
	if err != nil {
		t.Fatalf("find sale: %v", err)
	}
	if sale == nil {
		t.Fatal("sale was not recorded")
	}
	if sale.Status != entity.TicketSaleStatusConfirmed {
		t.Errorf("sale status = %s, want confirmed", sale.Status)
	}

	updated, _ := repo.Event.FindByID(context.Background(), event.ID)
	if updated.CurrentAttendees != 8 {
		t.Errorf("attendees = %d, want 8", updated.CurrentAttendees)
	}
}

func TestConfirmPurchaseIsIdempotent(t *testing.T) {
	repo, gateway, service := newTicketFixture(t)
	event := createEvent(t, repo, 10.00, 20, 0, true)

	intent, err := service.CreatePaymentIntent(context.Background(), intentRequest(event.ID, 2))
	if err != nil {
		t.Fatalf("CreatePaymentIntent: %v", err)
	}
	if err := gateway.MarkSucceeded(intent.PaymentIntentID); err != nil {
		t.Fatalf("MarkSucceeded: %v", err)
	}

	confirmReq := &request.ConfirmTicketPurchaseRequest{PaymentIntentID: intent.PaymentIntentID}

	first, err := service.ConfirmPurchase(context.Background(), confirmReq)
	if err != nil {
		t.Fatalf("first confirm: %v", err)
	}
	second, err := service.ConfirmPurchase(context.Background(), confirmReq)
	if err != nil {
		t.Fatalf("second confirm: %v", err)
	}

	if first.ConfirmationNumber != second.ConfirmationNumber {
		t.Errorf("confirmation changed across retries: %q then %q",
			first.ConfirmationNumber, second.ConfirmationNumber)
	}

	sales, _ := repo.TicketSale.FindAll(context.Background())
	if len(sales) != 1 {
		t.Errorf("found %d sales, want 1", len(sales))
	}

	updated, _ := repo.Event.FindByID(context.Background(), event.ID)
	if updated.CurrentAttendees != 2 {
		t.Errorf("attendees = %d, want 2 after duplicate confirm", updated.CurrentAttendees)
	}
}

// failingGateway errors on every lookup, standing in for a payment
// provider outage.
type failingGateway struct {
	inner payment.Gateway
}

func (g *failingGateway) CreateIntent(ctx context.Context, params *payment.IntentParams) (*payment.Intent, error) {
	return g.inner.CreateIntent(ctx, params)
}

func (g *failingGateway) GetIntent(ctx context.Context, id string) (*payment.Intent, error) {
	return nil, errors.New("gateway unavailable")
}

func TestConfirmPurchaseRepeatSurvivesGatewayOutage(t *testing.T) {
	repo, gateway, service := newTicketFixture(t)
	event := createEvent(t, repo, 10.00, 20, 0, true)

	intent, err := service.CreatePaymentIntent(context.Background(), intentRequest(event.ID, 2))
	if err != nil {
		t.Fatalf("CreatePaymentIntent: %v", err)
	}
	if err := gateway.MarkSucceeded(intent.PaymentIntentID); err != nil {
		t.Fatalf("MarkSucceeded: %v", err)
	}

	confirmReq := &request.ConfirmTicketPurchaseRequest{PaymentIntentID: intent.PaymentIntentID}

	first, err := service.ConfirmPurchase(context.Background(), confirmReq)
	if err != nil {
		t.Fatalf("first confirm: %v", err)
	}

	// the provider goes dark; the retry still answers from the sale record
	broken := NewTicketService(repo, &failingGateway{inner: gateway}, zap.NewNop())
	second, err := broken.ConfirmPurchase(context.Background(), confirmReq)
	if err != nil {
		t.Fatalf("repeat confirm during outage: %v", err)
	}

	if first.ConfirmationNumber != second.ConfirmationNumber {
		t.Errorf("confirmation changed across retries: %q then %q",
			first.ConfirmationNumber, second.ConfirmationNumber)
	}
	if second.EventTitle != event.Title {
		t.Errorf("event title = %q, want %q", second.EventTitle, event.Title)
	}
}

func TestConfirmPurchaseUnknownIntent(t *testing.T) {
	_, _, service := newTicketFixture(t)

	_, err := service.ConfirmPurchase(context.Background(), &request.ConfirmTicketPurchaseRequest{
		PaymentIntentID: "pi_missing",
	})
	if err == nil {
		t.Error("unknown intent accepted")
	}
}
