package response

import (
	"time"

	"coffee-house/internal/data/entity"
	"coffee-house/pkg/utils"
)

type PaymentIntentResponse struct {
	PaymentIntentID string `json:"payment_intent_id"`
	ClientSecret    string `json:"client_secret"`
	Amount          int64  `json:"amount"` // pence
	Currency        string `json:"currency"`
}

type TicketConfirmationResponse struct {
	ConfirmationNumber string  `json:"confirmation_number"`
	EventTitle         string  `json:"event_title"`
	CustomerName       string  `json:"customer_name"`
	CustomerEmail      string  `json:"customer_email"`
	Quantity           int     `json:"quantity"`
	TotalAmount        float64 `json:"total_amount"`
}

type TicketSaleResponse struct {
	ID                 int64                   `json:"id"`
	ConfirmationNumber string                  `json:"confirmation_number"`
	EventID            string                  `json:"event_id"`
	CustomerName       string                  `json:"customer_name"`
	CustomerEmail      string                  `json:"customer_email"`
	CustomerPhone      *string                 `json:"customer_phone,omitempty"`
	Quantity           int                     `json:"quantity"`
	UnitPrice          float64                 `json:"unit_price"`
	TotalAmount        float64                 `json:"total_amount"`
	PaymentRef         string                  `json:"payment_ref"`
	Status             entity.TicketSaleStatus `json:"status"`
	PurchasedAt        time.Time               `json:"purchased_at"`
}

func TicketSaleToResponse(sale *entity.TicketSale) TicketSaleResponse {
	return TicketSaleResponse{
		ID:                 sale.ID,
		ConfirmationNumber: utils.FormatConfirmationNumber(sale.ID),
		EventID:            sale.EventID.String(),
		CustomerName:       sale.CustomerName,
		CustomerEmail:      sale.CustomerEmail,
		CustomerPhone:      sale.CustomerPhone,
		Quantity:           sale.Quantity,
		UnitPrice:          sale.UnitPrice,
		TotalAmount:        sale.TotalAmount,
		PaymentRef:         sale.PaymentRef,
		Status:             sale.Status,
		PurchasedAt:        sale.PurchasedAt,
	}
}
