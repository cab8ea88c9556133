package request

type OrderLineRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required,uuid4"`
	Quantity   int    `json:"quantity" validate:"required,min=1"`
}

type CreateOrderRequest struct {
	CustomerName    string             `json:"customer_name" validate:"required,min=2,max=100"`
	CustomerEmail   string             `json:"customer_email" validate:"required,email"`
	CustomerPhone   *string            `json:"customer_phone,omitempty"`
	Type            string             `json:"type" validate:"required,oneof=collection delivery"`
	DeliveryAddress *string            `json:"delivery_address,omitempty"`
	Items           []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed in_progress completed cancelled"`
}
