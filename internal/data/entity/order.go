package entity

import (
	"github.com/google/uuid"
)

type OrderType string

const (
	OrderTypeCollection OrderType = "collection"
	OrderTypeDelivery   OrderType = "delivery"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// CanTransitionTo enforces forward-only status moves. Cancellation is
// allowed from any state before completion.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if next == OrderStatusCancelled {
		return s != OrderStatusCompleted && s != OrderStatusCancelled
	}

	switch s {
	case OrderStatusPending:
		return next == OrderStatusConfirmed
	case OrderStatusConfirmed:
		return next == OrderStatusInProgress
	case OrderStatusInProgress:
		return next == OrderStatusCompleted
	default:
		return false
	}
}

type Order struct {
	Base
	CustomerName    string      `db:"customer_name"`
	CustomerEmail   string      `db:"customer_email"`
	CustomerPhone   *string     `db:"customer_phone"`
	Type            OrderType   `db:"order_type"`
	DeliveryAddress *string     `db:"delivery_address"`
	TotalAmount     float64     `db:"total_amount"`
	Status          OrderStatus `db:"status"`
}

type OrderItem struct {
	BaseSimple
	OrderID    uuid.UUID  `db:"order_id"`
	MenuItemID *uuid.UUID `db:"menu_item_id"`
	ItemName   string     `db:"item_name"`
	UnitPrice  float64    `db:"unit_price"`
	Quantity   int        `db:"quantity"`
}
