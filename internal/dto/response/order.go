package response

import (
	"time"

	"coffee-house/internal/data/entity"
)

type OrderItemResponse struct {
	MenuItemID *string `json:"menu_item_id,omitempty"`
	ItemName   string  `json:"item_name"`
	UnitPrice  float64 `json:"unit_price"`
	Quantity   int     `json:"quantity"`
}

type OrderResponse struct {
	ID              string              `json:"id"`
	CustomerName    string              `json:"customer_name"`
	CustomerEmail   string              `json:"customer_email"`
	CustomerPhone   *string             `json:"customer_phone,omitempty"`
	Type            entity.OrderType    `json:"type"`
	DeliveryAddress *string             `json:"delivery_address,omitempty"`
	TotalAmount     float64             `json:"total_amount"`
	Status          entity.OrderStatus  `json:"status"`
	Items           []OrderItemResponse `json:"items,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

func OrderItemToResponse(item *entity.OrderItem) OrderItemResponse {
	resp := OrderItemResponse{
		ItemName:  item.ItemName,
		UnitPrice: item.UnitPrice,
		Quantity:  item.Quantity,
	}
	if item.MenuItemID != nil {
		id := item.MenuItemID.String()
		resp.MenuItemID = &id
	}
	return resp
}

func OrderToResponse(order *entity.Order, items []*entity.OrderItem) OrderResponse {
	resp := OrderResponse{
		ID:              order.ID.String(),
		CustomerName:    order.CustomerName,
		CustomerEmail:   order.CustomerEmail,
		CustomerPhone:   order.CustomerPhone,
		Type:            order.Type,
		DeliveryAddress: order.DeliveryAddress,
		TotalAmount:     order.TotalAmount,
		Status:          order.Status,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, OrderItemToResponse(item))
	}
	return resp
}
