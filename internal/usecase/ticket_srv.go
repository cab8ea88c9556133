package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"coffee-house/internal/data/entity"
	"coffee-house/internal/data/repository"
	"coffee-house/internal/dto/request"
	"coffee-house/internal/dto/response"
	"coffee-house/pkg/payment"
	"coffee-house/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TicketService interface {
	CreatePaymentIntent(ctx context.Context, req *request.CreatePaymentIntentRequest) (*response.PaymentIntentResponse, error)
	ConfirmPurchase(ctx context.Context, req *request.ConfirmTicketPurchaseRequest) (*response.TicketConfirmationResponse, error)
	GetSales(ctx context.Context) ([]response.TicketSaleResponse, error)
}

type ticketService struct {
	repo    *repository.Repository
	gateway payment.Gateway
	log     *zap.Logger
}

func NewTicketService(repo *repository.Repository, gateway payment.Gateway, log *zap.Logger) TicketService {
	return &ticketService{
		repo:    repo,
		gateway: gateway,
		log:     log.With(zap.String("service", "ticket")),
	}
}

// CreatePaymentIntent checks the event and capacity, then opens a payment
// intent carrying everything needed to build the sale later. Nothing is
// written to the database until the payment succeeds.
func (s *ticketService) CreatePaymentIntent(ctx context.Context, req *request.CreatePaymentIntentRequest) (*response.PaymentIntentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, fmt.Errorf("invalid event id")
	}

	event, err := s.repo.Event.FindByID(ctx, eventID)
	if err != nil {
		s.log.Error("Failed to find event", zap.Error(err), zap.String("event_id", eventID.String()))
		return nil, fmt.Errorf("failed to find event")
	}
	if event == nil {
		return nil, fmt.Errorf("event not found")
	}
	if !event.IsPublished {
		return nil, fmt.Errorf("event is not available")
	}
	if event.TicketPrice <= 0 {
		return nil, fmt.Errorf("tickets are not on sale for this event")
	}

	remaining := event.RemainingCapacity()
	if remaining == 0 {
		return nil, fmt.Errorf("event is sold out")
	}
	if req.Quantity > remaining {
		return nil, fmt.Errorf("Only %d tickets remaining", remaining)
	}

	total := event.TicketPrice * float64(req.Quantity)
	metadata := map[string]string{
		"event_id":       event.ID.String(),
		"event_title":    event.Title,
		"event_date":     event.EventDate.Format(time.RFC3339),
		"quantity":       strconv.Itoa(req.Quantity),
		"unit_price":     strconv.FormatFloat(event.TicketPrice, 'f', 2, 64),
		"customer_name":  req.CustomerName,
		"customer_email": req.CustomerEmail,
	}
	if req.CustomerPhone != nil {
		metadata["customer_phone"] = *req.CustomerPhone
	}

	intent, err := s.gateway.CreateIntent(ctx, &payment.IntentParams{
		Amount:   utils.PoundsToPence(total),
		Currency: "gbp",
		Metadata: metadata,
	})
	if err != nil {
		s.log.Error("Failed to create payment intent", zap.Error(err), zap.String("event_id", event.ID.String()))
		return nil, fmt.Errorf("failed to create payment intent")
	}

	s.log.Info("Payment intent created",
		zap.String("intent_id", intent.ID),
		zap.String("event_id", event.ID.String()),
		zap.Int("quantity", req.Quantity),
		zap.Int64("amount", intent.Amount),
	)

	return &response.PaymentIntentResponse{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		Amount:          intent.Amount,
		Currency:        intent.Currency,
	}, nil
}

// ConfirmPurchase verifies the payment succeeded and records the sale.
// Confirming the same intent twice returns the original confirmation and
// never counts attendees again.
func (s *ticketService) ConfirmPurchase(ctx context.Context, req *request.ConfirmTicketPurchaseRequest) (*response.TicketConfirmationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.TicketSale.FindByPaymentRef(ctx, req.PaymentIntentID)
	if err != nil {
		s.log.Error("Failed to look up sale", zap.Error(err), zap.String("intent_id", req.PaymentIntentID))
		return nil, fmt.Errorf("failed to confirm purchase")
	}
	if existing != nil {
		// a repeat confirm answers from our own records, without
		// another round trip to the payment provider
		title := ""
		if event, err := s.repo.Event.FindByID(ctx, existing.EventID); err == nil && event != nil {
			title = event.Title
		}
		return s.confirmationFromSale(existing, title), nil
	}

	intent, err := s.gateway.GetIntent(ctx, req.PaymentIntentID)
	if err != nil {
		s.log.Error("Failed to fetch payment intent", zap.Error(err), zap.String("intent_id", req.PaymentIntentID))
		return nil, fmt.Errorf("failed to confirm purchase")
	}
	if intent.Status != payment.StatusSucceeded {
		return nil, fmt.Errorf("payment has not succeeded")
	}

	eventID, err := uuid.Parse(intent.Metadata["event_id"])
	if err != nil {
		return nil, fmt.Errorf("payment intent is missing event details")
	}
	quantity, err := strconv.Atoi(intent.Metadata["quantity"])
	if err != nil || quantity < 1 {
		return nil, fmt.Errorf("payment intent is missing event details")
	}
	unitPrice, err := strconv.ParseFloat(intent.Metadata["unit_price"], 64)
	if err != nil {
		return nil, fmt.Errorf("payment intent is missing event details")
	}

	sale := &entity.TicketSale{
		EventID:       eventID,
		CustomerName:  intent.Metadata["customer_name"],
		CustomerEmail: intent.Metadata["customer_email"],
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		TotalAmount:   unitPrice * float64(quantity),
		PaymentRef:    intent.ID,
		Status:        entity.TicketSaleStatusConfirmed,
		PurchasedAt:   time.Now(),
	}
	if phone, ok := intent.Metadata["customer_phone"]; ok && phone != "" {
		sale.CustomerPhone = &phone
	}

	if err := s.repo.TicketSale.Create(ctx, sale); err != nil {
		s.log.Error("Failed to record ticket sale", zap.Error(err), zap.String("intent_id", intent.ID))
		return nil, fmt.Errorf("failed to confirm purchase")
	}

	if err := s.repo.Event.IncrementAttendees(ctx, eventID, quantity); err != nil {
		s.log.Error("Failed to increment attendees",
			zap.Error(err),
			zap.String("event_id", eventID.String()),
			zap.Int("quantity", quantity),
		)
		return nil, fmt.Errorf("failed to confirm purchase")
	}

	s.log.Info("Ticket purchase confirmed",
		zap.Int64("sale_id", sale.ID),
		zap.String("event_id", eventID.String()),
		zap.Int("quantity", quantity),
		zap.Float64("total", sale.TotalAmount),
	)

	return s.confirmationFromSale(sale, intent.Metadata["event_title"]), nil
}

func (s *ticketService) confirmationFromSale(sale *entity.TicketSale, eventTitle string) *response.TicketConfirmationResponse {
	return &response.TicketConfirmationResponse{
		ConfirmationNumber: utils.FormatConfirmationNumber(sale.ID),
		EventTitle:         eventTitle,
		CustomerName:       sale.CustomerName,
		CustomerEmail:      sale.CustomerEmail,
		Quantity:           sale.Quantity,
		TotalAmount:        sale.TotalAmount,
	}
}

func (s *ticketService) GetSales(ctx context.Context) ([]response.TicketSaleResponse, error) {
	sales, err := s.repo.TicketSale.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list ticket sales", zap.Error(err))
		return nil, fmt.Errorf("failed to list ticket sales")
	}

	resp := make([]response.TicketSaleResponse, 0, len(sales))
	for _, sale := range sales {
		resp = append(resp, response.TicketSaleToResponse(sale))
	}
	return resp, nil
}
